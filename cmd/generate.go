package cmd

import (
	"fmt"
	"sort"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/internal/adapters/rasterizer"
	"github.com/izapata/iconsmith/internal/adapters/repository"
	"github.com/izapata/iconsmith/internal/core/domain"
	"github.com/izapata/iconsmith/internal/core/ports"
	"github.com/izapata/iconsmith/internal/core/services"
	"github.com/izapata/iconsmith/pkg/ui"
)

var (
	generateSource  string
	generateOnly    []string
	generateSelect  bool
	generateDryRun  bool
	generateVerbose bool
	generateStrict  bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Render every size preset from the source image",
	Long: `Render the source image once per size preset and write each result,
overwriting existing files.

The run stops at the first failure. Icons written before the failure are
left in place.

Examples:
  iconsmith generate
  iconsmith generate --only favicon,apple
  iconsmith generate --source assets/logo.svg --dry-run
  iconsmith generate --select
  iconsmith generate --strict`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateSource, "source", "s", "", "Source image (overrides config)")
	generateCmd.Flags().StringSliceVar(&generateOnly, "only", nil, "Only render the named presets")
	generateCmd.Flags().BoolVar(&generateSelect, "select", false, "Pick presets interactively")
	generateCmd.Flags().BoolVarP(&generateDryRun, "dry-run", "n", false, "Render and encode without writing files")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "List every file written")
	generateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Fail on SVG elements that cannot be rendered")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext(cmd)

	presets, err := domain.FilterPresets(appConfig.Presets, generateOnly)
	if err != nil {
		return err
	}

	if generateSelect {
		presets, err = selectPresets(presets)
		if err != nil {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
	}

	source := appConfig.Source
	if generateSource != "" {
		source = generateSource
	}

	svc := exportService
	if generateDryRun || generateStrict {
		var writer ports.ArtifactWriter = fileRepo
		if generateDryRun {
			writer = repository.NewDryRunRepository(appProject)
		}
		renderer := iconRenderer
		if generateStrict {
			renderer = rasterizer.NewStrict()
		}
		svc = services.NewExportService(fileRepo, writer, renderer, iconEncoder)
	}

	req := services.ExportRequest{
		SourcePath: source,
		Presets:    presets,
	}
	if generateVerbose {
		req.OnArtifact = func(a domain.Artifact) {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("  %-8s %-9s %s (%d bytes)",
				a.Preset.Name, a.Preset.Dimensions(), appProject.Relative(a.Path), a.Bytes)))
		}
	}

	if _, err := svc.Execute(ctx, req); err != nil {
		return fmt.Errorf("error generating icons: %w", err)
	}

	if generateDryRun {
		fmt.Println(ui.FormatSuccess("Dry run complete, no files written"))
		return nil
	}
	fmt.Println(ui.FormatSuccess("Icons generated successfully"))
	return nil
}

// selectPresets lets the user pick a subset of presets with a fuzzy finder
func selectPresets(presets []domain.SizePreset) ([]domain.SizePreset, error) {
	idxs, err := fuzzyfinder.FindMulti(
		presets,
		func(i int) string {
			return presets[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p := presets[i]
			return fmt.Sprintf("Preset: %s\nSize: %s\nOutput: %s\nFormat: %s",
				p.Name, p.Dimensions(), p.Output, p.Format)
		}),
	)
	if err != nil {
		return nil, err
	}

	// Keep table order regardless of pick order
	sort.Ints(idxs)
	selected := make([]domain.SizePreset, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, presets[i])
	}
	return selected, nil
}
