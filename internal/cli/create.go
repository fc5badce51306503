package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsjohnst/rave/internal/branding"
	"github.com/jsjohnst/rave/internal/config"
	"github.com/jsjohnst/rave/internal/scaffold"
)

var (
	createBaseDir string
	createJarsDir string
)

func init() {
	createCmd.Flags().StringVar(&createBaseDir, "base-dir", ".", "Directory to create the robot project in")
	createCmd.Flags().StringVar(&createJarsDir, "jars-dir", "", "Directory holding the bundled jars (default: jars_dir setting, then ../jars next to the binary)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <robot_name> [key=value ...]",
	Short: "Create a new robot project",
	Long: `Create a new robot project in ./<robot_name>.

The name must be usable as a single directory name. It is otherwise used as
written: words split on '_' or '-' form the Ruby module name (my_robot becomes
MyRobot), and no other characters are rejected, so choose a name that is also
a valid Ruby constant once capitalized.

Every key=value argument becomes an option passed to the robot's constructor
in config.ru, after the default name and version options.

Example:
  rave create my_robot image_url=http://my-robot.appspot.com/image.png profile_url=http://my-robot.appspot.com/profile.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd.OutOrStdout(), args[0], args[1:])
	},
}

func runCreate(out io.Writer, name string, rawArgs []string) error {
	jarsDir, err := config.ResolveJarsDir(createJarsDir)
	if err != nil {
		return err
	}
	logger.Debug().Str("jars_dir", jarsDir).Str("base_dir", createBaseDir).Msg("resolved directories")

	s, err := scaffold.New(scaffold.Config{
		BaseDir:     createBaseDir,
		ResourceDir: jarsDir,
		Out:         out,
		Logger:      &logger,
	})
	if err != nil {
		return fmt.Errorf("preparing scaffold: %w", err)
	}

	result, err := s.Scaffold(name, rawArgs)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCreated robot %s at %s/\n", name, result.RootDir)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Add event handlers to %s/%s\n", result.RootDir, scaffold.RobotFile)
	fmt.Fprintln(out, "  2. Run 'warble' in the project directory to package it")
	fmt.Fprintf(out, "  3. Check your environment with '%s doctor'\n", branding.CLIName())
	return nil
}
