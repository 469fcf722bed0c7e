package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/internal/core/services"
	"github.com/izapata/iconsmith/pkg/ui"
)

var (
	snippetCopy bool
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Print the HTML <link> tags for the generated icons",
	Long: `Print the <link> tags a page <head> needs to reference every preset.

Hrefs are relative to public_dir, which is served from the site root.

Examples:
  iconsmith snippet
  iconsmith snippet --copy`,
	Args: cobra.NoArgs,
	RunE: runSnippet,
}

func init() {
	snippetCmd.Flags().BoolVarP(&snippetCopy, "copy", "c", false, "Copy the tags to the clipboard")
}

func runSnippet(cmd *cobra.Command, args []string) error {
	resp := snippetService.Execute(services.SnippetRequest{Presets: appConfig.Presets})
	html := resp.String()

	fmt.Println(html)

	if snippetCopy {
		// Clipboard access is best effort
		if err := clipboard.WriteAll(html); err != nil {
			fmt.Println(ui.FormatMuted("(Clipboard access failed, please copy manually)"))
			return nil
		}
		fmt.Println(ui.FormatSuccess("Copied to clipboard"))
	}

	return nil
}
