package manifest

// Archive is a single prebuilt library bundled with the CLI.
type Archive struct {
	Name        string `yaml:"name" json:"name"`
	File        string `yaml:"file" json:"file"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Document is the top-level shape of archives.yaml.
type Document struct {
	Archives []Archive `yaml:"archives" json:"archives"`
}

// Files returns the file names of the given archives, in order.
func Files(archives []Archive) []string {
	files := make([]string, 0, len(archives))
	for _, a := range archives {
		files = append(files, a.File)
	}
	return files
}
