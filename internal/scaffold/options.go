package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultVersion is the robot version written when none is given.
const DefaultVersion = "1"

// Option is a single key/value pair passed to the generated robot's constructor.
type Option struct {
	Key   string
	Value string
}

// Options is an insertion-ordered string map. Setting an existing key
// replaces its value without moving it.
type Options struct {
	entries []Option
	index   map[string]int
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{index: make(map[string]int)}
}

// Set adds or replaces key.
func (o *Options) Set(key, value string) {
	if i, ok := o.index[key]; ok {
		o.entries[i].Value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Option{Key: key, Value: value})
}

// Get returns the value stored for key.
func (o *Options) Get(key string) (string, bool) {
	i, ok := o.index[key]
	if !ok {
		return "", false
	}
	return o.entries[i].Value, true
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.entries)
}

// Entries returns a copy of the options in insertion order.
func (o *Options) Entries() []Option {
	out := make([]Option, len(o.entries))
	copy(out, o.entries)
	return out
}

// ParseOption splits raw on its first '=' and trims both halves.
func ParseOption(raw string) (Option, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Option{}, fmt.Errorf("%w: %q is not of the form key=value", ErrMalformedOption, raw)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Option{}, fmt.Errorf("%w: %q has an empty key", ErrMalformedOption, raw)
	}
	return Option{Key: key, Value: strings.TrimSpace(value)}, nil
}

// ParseOptions builds the option set for a robot: name and version first,
// then every key=value argument in the order given.
func ParseOptions(name string, rawArgs []string) (*Options, error) {
	opts := NewOptions()
	opts.Set("name", name)
	opts.Set("version", DefaultVersion)

	for _, raw := range rawArgs {
		opt, err := ParseOption(raw)
		if err != nil {
			return nil, err
		}
		opts.Set(opt.Key, opt.Value)
	}
	return opts, nil
}

var rubySymbolPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// A '#' starting #{expr}, #@ivar, #@@cvar or #$gvar interpolates inside
// double quotes.
var rubyStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`#{`, `\#{`,
	`#@`, `\#@`,
	`#$`, `\#$`,
)

// rubyString renders s as a double-quoted Ruby string literal.
func rubyString(s string) string {
	return `"` + rubyStringEscaper.Replace(s) + `"`
}

// rubySymbol renders key as a Ruby symbol, quoting it when it is not a bare
// identifier.
func rubySymbol(key string) string {
	if rubySymbolPattern.MatchString(key) {
		return ":" + key
	}
	return ":" + rubyString(key)
}

// RubyHash renders the options as the argument list of a Ruby constructor
// call, e.g. `:name => "my_robot", :version => "1"`. Values are always
// string literals.
func (o *Options) RubyHash() string {
	parts := make([]string, 0, len(o.entries))
	for _, e := range o.entries {
		parts = append(parts, rubySymbol(e.Key)+" => "+rubyString(e.Value))
	}
	return strings.Join(parts, ", ")
}
