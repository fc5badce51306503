package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/archives.schema.json
var schemaBytes []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a manifest against the
// archive schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation. Archive identifies the offending
// entry when the violation is inside the archives list.
type ValidationIssue struct {
	Path    string // e.g. "/archives/0/file"
	Archive string // e.g. "archives[0] (readme, README.md)"
	Keyword string
	Message string
}

// String renders the issue as "<where>: <message>".
func (i ValidationIssue) String() string {
	switch {
	case i.Archive != "" && i.Path != "":
		return i.Archive + " " + i.Path + ": " + i.Message
	case i.Path != "":
		return i.Path + ": " + i.Message
	default:
		return i.Message
	}
}

func archiveSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("archives.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schema, err = c.Compile("archives.schema.json"); err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks a YAML archive manifest against the embedded schema. The
// error return covers unreadable YAML and schema compilation; violations
// are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	s, err := archiveSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	raw = normalizeYAML(raw)

	// Round-trip through JSON so numbers reach the validator as json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = s.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	entries := archiveEntries(raw)
	var issues []ValidationIssue
	collectIssues(ve, entries, &issues)
	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Message: ve.Error()})
	}
	sort.SliceStable(issues, func(a, b int) bool { return issues[a].Path < issues[b].Path })
	return &ValidationResult{Issues: issues}, nil
}

func collectIssues(ve *jsonschema.ValidationError, entries []any, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, entries, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	issue := ValidationIssue{Message: ve.ErrorKind.LocalizedString(printer)}
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		issue.Keyword = kw[len(kw)-1]
	}
	if loc := ve.InstanceLocation; len(loc) > 0 {
		issue.Path = "/" + strings.Join(loc, "/")
		if len(loc) >= 2 && loc[0] == "archives" {
			issue.Archive = describeEntry(entries, loc[1])
		}
	}
	*issues = append(*issues, issue)
}

func archiveEntries(raw any) []any {
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	entries, _ := doc["archives"].([]any)
	return entries
}

// describeEntry labels archives[idx] with whatever name and file it has.
func describeEntry(entries []any, idx string) string {
	i, err := strconv.Atoi(idx)
	if err != nil {
		return ""
	}
	label := "archives[" + idx + "]"
	if i < 0 || i >= len(entries) {
		return label
	}
	entry, ok := entries[i].(map[string]any)
	if !ok {
		return label
	}

	var ids []string
	for _, key := range []string{"name", "file"} {
		if v, ok := entry[key].(string); ok && v != "" {
			ids = append(ids, v)
		}
	}
	if len(ids) == 0 {
		return label
	}
	return label + " (" + strings.Join(ids, ", ") + ")"
}

// normalizeYAML converts YAML-decoded maps to string-keyed maps. Unquoted
// scalars such as `version: 1.2` stay numbers so the schema reports them as
// type errors.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []any:
		for i, e := range val {
			val[i] = normalizeYAML(e)
		}
		return val
	default:
		return val
	}
}
