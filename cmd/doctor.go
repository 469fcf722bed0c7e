package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/internal/core/domain"
	"github.com/izapata/iconsmith/internal/core/services"
	"github.com/izapata/iconsmith/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that icons can be generated",
	Long: `Diagnose the icon setup without writing any icon.

Checks for:
  - Configuration file (optional, defaults apply without it)
  - Source image presence and decodability
  - Output directories exist or can be created`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := getContext(cmd)

	fmt.Println(ui.FormatTitle("iconsmith doctor"))
	fmt.Println()

	failed := 0
	check := func(name string, fn func() error) {
		if !checkStep(name, fn) {
			failed++
		}
	}

	// A missing config is not a failure, defaults apply
	if appProject.HasConfig() {
		checkStep("Configuration File", func() error { return nil })
	} else {
		fmt.Printf("%s %s\n", ui.StyleWarning.Render("⚠"), "Configuration File")
		fmt.Printf("    %s\n", ui.StyleMuted.Render("not found at "+appProject.ConfigPath+" (using defaults)"))
	}

	var info *domain.SourceInfo
	check("Source Image", func() error {
		var err error
		info, err = inspectService.Execute(ctx, services.InspectRequest{SourcePath: appConfig.Source})
		return err
	})
	if info != nil {
		fmt.Printf("    %s\n", ui.FormatMuted(fmt.Sprintf("%s, %gx%g, %d bytes",
			info.Format, info.Width, info.Height, info.Bytes)))
	}

	for _, p := range appConfig.Presets {
		check(fmt.Sprintf("Output %s (%s)", p.Name, p.Output), func() error {
			return fileRepo.CheckWritable(p.Output)
		})
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println(ui.FormatSuccess("All checks passed"))
	return nil
}

// checkStep runs a check function and prints the result
func checkStep(name string, check func() error) bool {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.StyleSuccess.Render("✔"), name)
		return true
	}
	fmt.Printf("%s %s\n", ui.StyleError.Render("✘"), name)
	fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	return false
}
