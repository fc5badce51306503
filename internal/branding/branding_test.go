package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "rave" {
		t.Errorf("CLIName() = %q, want %q", got, "rave")
	}
	if got := HomeDir(); got != ".rave" {
		t.Errorf("HomeDir() = %q, want %q", got, ".rave")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("jars_dir"); got != "RAVE_JARS_DIR" {
		t.Errorf("EnvVar(jars_dir) = %q, want %q", got, "RAVE_JARS_DIR")
	}
}
