package manifest

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed archives.yaml
var archivesYAML []byte

var (
	loadOnce     sync.Once
	loadArchives []Archive
	loadErr      error
)

// Load returns the embedded archive list. The document is schema-validated
// and parsed once per process.
func Load() ([]Archive, error) {
	loadOnce.Do(func() {
		loadArchives, loadErr = Parse(archivesYAML)
		if loadErr != nil {
			loadErr = fmt.Errorf("embedded archive manifest: %w", loadErr)
		}
	})
	return loadArchives, loadErr
}

// Parse validates raw YAML against the archive schema and returns the
// archives it declares. Any schema issue is reported as an error.
func Parse(data []byte) ([]Archive, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid archive manifest: %s", strings.Join(msgs, "; "))
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing archive manifest: %w", err)
	}

	seen := make(map[string]bool, len(doc.Archives))
	for _, a := range doc.Archives {
		if seen[a.File] {
			return nil, fmt.Errorf("archive file %q listed more than once", a.File)
		}
		seen[a.File] = true

		if a.Version == "" {
			continue
		}
		if _, err := semver.NewVersion(a.Version); err != nil {
			return nil, fmt.Errorf("archive %s: invalid version %q: %w", a.Name, a.Version, err)
		}
	}

	return doc.Archives, nil
}
