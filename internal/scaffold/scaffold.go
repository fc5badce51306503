package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jsjohnst/rave/internal/manifest"
)

// Names of the generated files and directories, relative to the project root.
const (
	RobotFile        = "robot.rb"
	RackupFile       = "config.ru"
	AppEngineWebFile = "appengine-web.xml"
	PublicDir        = "public"
	LibDir           = "lib"
	ConfigDir        = "config"
	WarbleFile       = "warble.rb"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// State is how far a scaffold run got.
type State int

const (
	StateCreated State = iota
	StateDirectoryMade
	StateFilesWritten
	StateResourcesCopied
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateDirectoryMade:
		return "directory-made"
	case StateFilesWritten:
		return "files-written"
	case StateResourcesCopied:
		return "resources-copied"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Request is a validated robot name with its derived module name and options.
type Request struct {
	Name       string
	ModuleName string
	Options    *Options
}

// NewRequest validates name and parses rawArgs ("key=value" strings).
func NewRequest(name string, rawArgs []string) (*Request, error) {
	moduleName, err := DeriveModuleName(name)
	if err != nil {
		return nil, stepError(StepDeriveName, "", err)
	}
	opts, err := ParseOptions(name, rawArgs)
	if err != nil {
		return nil, stepError(StepParseOptions, "", err)
	}
	return &Request{Name: name, ModuleName: moduleName, Options: opts}, nil
}

// Config configures a Scaffolder.
type Config struct {
	// BaseDir is the directory the project directory is created in.
	// Defaults to ".".
	BaseDir string
	// ResourceDir holds the bundled jars. Required.
	ResourceDir string
	// Archives to copy into lib/. Defaults to the embedded archive manifest.
	Archives []manifest.Archive
	// Out receives one progress line per step. Defaults to io.Discard.
	Out io.Writer
	// Logger receives debug events. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Result holds the outcome of a scaffold run. On failure it describes what
// was created before the failing step.
type Result struct {
	RootDir string
	Files   []string // relative to RootDir; directories end in "/"
	State   State
}

// Scaffolder creates robot projects.
type Scaffolder struct {
	baseDir     string
	resourceDir string
	archives    []manifest.Archive
	out         io.Writer
	log         zerolog.Logger
}

// New returns a Scaffolder for cfg.
func New(cfg Config) (*Scaffolder, error) {
	if cfg.ResourceDir == "" {
		return nil, errResourceDirUnset
	}
	s := &Scaffolder{
		baseDir:     cfg.BaseDir,
		resourceDir: cfg.ResourceDir,
		archives:    cfg.Archives,
		out:         cfg.Out,
		log:         zerolog.Nop(),
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	if s.baseDir == "" {
		s.baseDir = "."
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.archives == nil {
		archives, err := manifest.Load()
		if err != nil {
			return nil, err
		}
		s.archives = archives
	}
	return s, nil
}

// Scaffold creates <BaseDir>/<name> and everything in it. It stops at the
// first failing step and returns a *Error naming that step; files and
// directories created before the failure are left in place.
func (s *Scaffolder) Scaffold(name string, rawArgs []string) (*Result, error) {
	req, err := NewRequest(name, rawArgs)
	if err != nil {
		return &Result{State: StateAborted}, err
	}
	return s.Generate(req)
}

// Generate runs the filesystem steps for an already parsed request.
func (s *Scaffolder) Generate(req *Request) (*Result, error) {
	r := &run{
		s:      s,
		root:   filepath.Join(s.baseDir, req.Name),
		ctx:    NewContext(req, manifest.Files(s.archives)),
		result: &Result{State: StateCreated},
	}
	r.result.RootDir = r.root

	if err := r.execute(); err != nil {
		r.result.State = StateAborted
		s.log.Debug().Err(err).Str("robot", req.Name).Msg("scaffold aborted")
		return r.result, err
	}
	r.result.State = StateDone
	return r.result, nil
}

// run carries the state of a single Generate call.
type run struct {
	s      *Scaffolder
	root   string
	ctx    Context
	result *Result
}

func (r *run) execute() error {
	if err := r.createRoot(); err != nil {
		return err
	}
	r.advance(StateDirectoryMade)

	files := []struct {
		step   Step
		name   string
		label  string
		render func(Context) (string, error)
	}{
		{StepWriteRobot, RobotFile, "robot class", RenderRobot},
		{StepWriteRackup, RackupFile, "rackup config file", RenderRackup},
		{StepWriteAppEngine, AppEngineWebFile, "appengine config file", RenderAppEngineWeb},
	}
	for _, f := range files {
		path := filepath.Join(r.root, f.name)
		r.printf("Creating %s %s\n", f.label, absPath(path))
		if err := r.writeRendered(f.step, path, f.render); err != nil {
			return err
		}
		r.record(f.name)
	}
	r.advance(StateFilesWritten)

	r.printf("Creating public folder\n")
	if err := r.mkdir(StepCreatePublic, PublicDir); err != nil {
		return err
	}

	if err := r.copyArchives(); err != nil {
		return err
	}
	r.advance(StateResourcesCopied)

	configDir := filepath.Join(r.root, ConfigDir)
	r.printf("Creating config directory %s\n", absPath(configDir))
	if err := r.mkdir(StepCreateConfigDir, ConfigDir); err != nil {
		return err
	}
	warble := filepath.Join(configDir, WarbleFile)
	r.printf("Creating warble config file %s\n", absPath(warble))
	if err := r.writeRendered(StepWriteWarble, warble, RenderWarble); err != nil {
		return err
	}
	r.record(ConfigDir + "/" + WarbleFile)
	return nil
}

func (r *run) createRoot() error {
	r.printf("Creating directory %s\n", absPath(r.root))
	if err := os.Mkdir(r.root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return stepError(StepCreateRoot, r.root,
				fmt.Errorf("%w: %s", ErrDirectoryExists, absPath(r.root)))
		}
		return stepError(StepCreateRoot, r.root, ioError(err))
	}
	r.s.log.Debug().Str("path", r.root).Msg("created project directory")
	return nil
}

func (r *run) copyArchives() error {
	lib := filepath.Join(r.root, LibDir)
	r.printf("Creating lib directory %s\n", absPath(lib))
	if err := r.mkdir(StepCreateLib, LibDir); err != nil {
		return err
	}

	for _, a := range r.s.archives {
		r.printf("Adding jar %s\n", a.File)
		if err := manifest.CopyArchive(r.s.resourceDir, lib, a); err != nil {
			path := filepath.Join(r.s.resourceDir, a.File)
			if errors.Is(err, manifest.ErrMissingArchive) {
				return stepError(StepCopyArchives, path, fmt.Errorf("%w: %w", ErrMissingResource, err))
			}
			return stepError(StepCopyArchives, path, ioError(err))
		}
		r.s.log.Debug().Str("archive", a.File).Str("from", r.s.resourceDir).Msg("copied archive")
		r.record(LibDir + "/" + a.File)
	}
	return nil
}

// mkdir creates a directory directly under the project root.
func (r *run) mkdir(step Step, rel string) error {
	path := filepath.Join(r.root, rel)
	if err := os.Mkdir(path, dirPerm); err != nil {
		return stepError(step, path, ioError(err))
	}
	r.record(rel + "/")
	return nil
}

func (r *run) writeRendered(step Step, path string, render func(Context) (string, error)) error {
	content, err := render(r.ctx)
	if err != nil {
		return stepError(step, path, err)
	}
	if err := writeNewFile(path, []byte(content)); err != nil {
		return stepError(step, path, ioError(err))
	}
	r.s.log.Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

func (r *run) record(rel string) {
	r.result.Files = append(r.result.Files, rel)
}

func (r *run) advance(state State) {
	r.result.State = state
	r.s.log.Debug().Stringer("state", state).Str("root", r.root).Msg("scaffold progress")
}

func (r *run) printf(format string, args ...any) {
	fmt.Fprintf(r.s.out, format, args...)
}

// writeNewFile writes data to path, failing if path already exists.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
