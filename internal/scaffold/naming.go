package scaffold

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-'
}

// SplitWords splits a robot name on '_' and '-', dropping empty pieces.
func SplitWords(name string) []string {
	return strings.FieldsFunc(name, isWordSeparator)
}

// DeriveModuleName turns a robot name into the Ruby module that wraps its
// Robot class: every word gets its first character upper-cased and the
// words are joined ("my_robot" → "MyRobot", "appropriate-casey" →
// "AppropriateCasey"). The rest of each word is left as written.
func DeriveModuleName(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	words := SplitWords(name)
	if len(words) == 0 {
		return "", fmt.Errorf("%w: %q contains no words", ErrInvalidName, name)
	}

	upper := cases.Upper(language.Und)
	var b strings.Builder
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteString(upper.String(string(r)))
		b.WriteString(w[size:])
	}
	return b.String(), nil
}

// ValidateName checks that name can be used as a single directory name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is not a directory name", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	case !utf8.ValidString(name):
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidName, name)
	}
	return nil
}
