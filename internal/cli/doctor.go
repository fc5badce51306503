package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jsjohnst/rave/internal/config"
	"github.com/jsjohnst/rave/internal/manifest"
)

var (
	doctorJarsDir string
	checkManifest string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorJarsDir, "jars-dir", "", "Directory holding the bundled jars (default: jars_dir setting, then ../jars next to the binary)")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate an archive manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that everything needed to create robots is in place",
	Long: `Verify that the bundled jars are present, and report whether the tools
used to build and deploy a generated robot are on PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		runToolCheck(out)
		return runJarsCheck(out, doctorJarsDir)
	},
}

func runJarsCheck(out io.Writer, flagValue string) error {
	archives, err := manifest.Load()
	if err != nil {
		return err
	}
	dir, err := config.ResolveJarsDir(flagValue)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Jars check: %s\n", dir)
	checks := manifest.Verify(dir, archives)
	for _, c := range checks {
		if !c.Present {
			fmt.Fprintf(out, "  [MISS] %s: %v\n", c.Archive.File, c.Err)
			continue
		}
		version := ""
		if c.Archive.Version != "" {
			version = " v" + c.Archive.Version
		}
		fmt.Fprintf(out, "  [ OK ] %s%s (%d bytes)\n", c.Archive.File, version, c.Size)
	}

	if missing := manifest.Missing(checks); len(missing) > 0 {
		return fmt.Errorf("%d of %d jars missing from %s", len(missing), len(checks), dir)
	}
	return nil
}

// runToolCheck is informational: the robot can be generated without these.
func runToolCheck(out io.Writer) {
	fmt.Fprintln(out, "Tools check:")
	for _, name := range []string{"java", "jruby", "warble", "appcfg.sh"} {
		path, err := exec.LookPath(name)
		if err != nil {
			fmt.Fprintf(out, "  [WARN] %s not found\n", name)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
	}
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		archives, err := manifest.Parse(data)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return err
		}
		fmt.Fprintf(out, "  [ OK ] Valid archive manifest: %d archive(s)\n", len(archives))
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
