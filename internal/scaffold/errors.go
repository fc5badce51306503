package scaffold

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Scaffold matches exactly one of these
// with errors.Is.
var (
	ErrInvalidName      = errors.New("invalid robot name")
	ErrMalformedOption  = errors.New("malformed option")
	ErrDirectoryExists  = errors.New("directory already exists")
	ErrIO               = errors.New("I/O failure")
	ErrMissingResource  = errors.New("missing bundled resource")
	errResourceDirUnset = errors.New("resource directory is not set")
)

// Step names a stage of project generation.
type Step string

const (
	StepDeriveName      Step = "derive name"
	StepParseOptions    Step = "parse options"
	StepCreateRoot      Step = "create directory"
	StepWriteRobot      Step = "write robot class"
	StepWriteRackup     Step = "write rackup config"
	StepWriteAppEngine  Step = "write appengine config"
	StepCreatePublic    Step = "create public folder"
	StepCreateLib       Step = "create lib directory"
	StepCopyArchives    Step = "copy archives"
	StepCreateConfigDir Step = "create config directory"
	StepWriteWarble     Step = "write warble config"
)

// Error reports the step that failed and why.
type Error struct {
	Step Step
	Path string // empty for steps that do not touch the filesystem
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

func stepError(step Step, path string, err error) *Error {
	return &Error{Step: step, Path: path, Err: err}
}

// ioError tags an underlying filesystem error as ErrIO while keeping it
// reachable through errors.Is.
func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
