package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/internal/adapters/codec"
	"github.com/izapata/iconsmith/internal/adapters/rasterizer"
	"github.com/izapata/iconsmith/internal/adapters/repository"
	"github.com/izapata/iconsmith/internal/core/services"
	"github.com/izapata/iconsmith/pkg/config"
	"github.com/izapata/iconsmith/pkg/project"
	"github.com/izapata/iconsmith/pkg/ui"
)

var (
	// Global flags
	rootDir    string
	configFile string

	appProject *project.Project
	appConfig  *config.Config

	// Services
	exportService  *services.ExportService
	inspectService *services.InspectService
	snippetService *services.SnippetService

	// Adapters
	fileRepo     *repository.FileRepository
	iconRenderer *rasterizer.Rasterizer
	iconEncoder  *codec.Encoder
)

// rootCmd generates the icons when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iconsmith",
	Short: "Generate site icons from a single SVG",
	Long: ui.StyleTitle.Render("iconsmith") + " - favicon and touch icon generator\n\n" +
		"Reads public/icon.svg and writes public/favicon.ico (32x32),\n" +
		"public/icon.png (192x192) and public/apple-icon.png (180x180).\n" +
		"Run without arguments to regenerate all icons.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runGenerate,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "Project root that relative paths resolve against")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default <dir>/iconsmith.yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(sizesCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads config and wires adapters into services
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	p, err := project.New(rootDir, configFile)
	if err != nil {
		return err
	}
	if !p.Exists() {
		return fmt.Errorf("project directory not found: %s", p.RootPath)
	}
	appProject = p

	// init writes the config, so a broken one must not block it
	if cmd.Name() == "init" {
		return nil
	}

	cfg, err := config.Load(appProject.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	fileRepo = repository.NewFileRepository(appProject)
	iconRenderer = rasterizer.New()
	iconEncoder = codec.NewEncoder()

	exportService = services.NewExportService(fileRepo, fileRepo, iconRenderer, iconEncoder)
	inspectService = services.NewInspectService(fileRepo, iconRenderer)
	snippetService = services.NewSnippetService(appConfig.PublicDir)

	return nil
}

// getContext returns a context for operations
func getContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
