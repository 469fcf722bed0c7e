package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/pkg/config"
	"github.com/izapata/iconsmith/pkg/ui"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default iconsmith.yaml",
	Long: `Write the default configuration to iconsmith.yaml in the project root.

The file lists the source image and the favicon / icon / apple presets so
they can be edited. Without a config file the same defaults apply.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if appProject.HasConfig() && !initForce {
		fmt.Println(ui.FormatWarning("Config already exists"))
		fmt.Println(ui.FormatMuted("Location: " + appProject.ConfigPath))
		fmt.Println(ui.FormatMuted("Use --force to overwrite"))
		return nil
	}

	if err := config.DefaultConfig().Save(appProject.ConfigPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Config written"))
	fmt.Println(ui.FormatMuted("Location: " + appProject.ConfigPath))
	return nil
}
