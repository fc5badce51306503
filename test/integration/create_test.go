//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsjohnst/rave/internal/config"
	"github.com/jsjohnst/rave/internal/manifest"
	"github.com/jsjohnst/rave/internal/scaffold"
)

// TestFullFlowCreateRobot tests the complete flow:
// resolve jars dir from the environment -> verify jars -> create robot -> inspect tree.
func TestFullFlowCreateRobot(t *testing.T) {
	env := setupTestEnv(t)
	config.Load()

	// Step 1: Resolve the jars directory the way the CLI does.
	jarsDir, err := config.ResolveJarsDir("")
	if err != nil {
		t.Fatalf("ResolveJarsDir: %v", err)
	}
	if jarsDir != env.JarsDir {
		t.Fatalf("jars dir = %s, want %s", jarsDir, env.JarsDir)
	}

	// Step 2: Every bundled archive is present.
	archives, err := manifest.Load()
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	if missing := manifest.Missing(manifest.Verify(jarsDir, archives)); len(missing) > 0 {
		t.Fatalf("missing archives: %v", missing)
	}

	// Step 3: Create the robot.
	var out bytes.Buffer
	s, err := scaffold.New(scaffold.Config{BaseDir: env.ProjectDir, ResourceDir: jarsDir, Out: &out})
	if err != nil {
		t.Fatalf("scaffold.New: %v", err)
	}
	args := []string{
		"image_url=http://appropriate-casey.appspot.com/image.png",
		"profile_url=http://appropriate-casey.appspot.com/profile.json",
	}
	if _, err := s.Scaffold("appropriate-casey", args); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}

	// Step 4: Verify the tree.
	root := filepath.Join(env.ProjectDir, "appropriate-casey")
	assertFileExists(t, filepath.Join(root, "robot.rb"))
	assertFileExists(t, filepath.Join(root, "config.ru"))
	assertFileExists(t, filepath.Join(root, "appengine-web.xml"))
	assertDirExists(t, filepath.Join(root, "public"))
	assertFileExists(t, filepath.Join(root, "config", "warble.rb"))
	for _, a := range archives {
		assertFileExists(t, filepath.Join(root, "lib", a.File))
	}

	rackup, err := os.ReadFile(filepath.Join(root, "config.ru"))
	if err != nil {
		t.Fatal(err)
	}
	want := `run AppropriateCasey::Robot.new( :name => "appropriate-casey", :version => "1", ` +
		`:image_url => "http://appropriate-casey.appspot.com/image.png", ` +
		`:profile_url => "http://appropriate-casey.appspot.com/profile.json" )`
	if !strings.Contains(string(rackup), want) {
		t.Errorf("config.ru = %q\nwant it to contain %q", rackup, want)
	}

	// Step 5: A second run refuses to touch the existing project.
	_, err = s.Scaffold("appropriate-casey", nil)
	if !errors.Is(err, scaffold.ErrDirectoryExists) {
		t.Errorf("second Scaffold error = %v, want ErrDirectoryExists", err)
	}
}
