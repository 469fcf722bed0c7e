package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/pkg/ui"
)

var sizesCmd = &cobra.Command{
	Use:     "sizes",
	Aliases: []string{"ls"},
	Short:   "List the active size presets",
	Args:    cobra.NoArgs,
	RunE:    runSizes,
}

func runSizes(cmd *cobra.Command, args []string) error {
	table := ui.NewTable(
		ui.TableColumn{Header: "NAME"},
		ui.TableColumn{Header: "SIZE", Align: lipgloss.Right},
		ui.TableColumn{Header: "FORMAT"},
		ui.TableColumn{Header: "OUTPUT"},
	)
	for _, p := range appConfig.Presets {
		table.AddRow(p.Name, p.Dimensions(), p.Format, p.Output)
	}

	fmt.Println(ui.RenderKeyValue("Source", appConfig.Source))
	fmt.Println()
	fmt.Print(table.Render())
	return nil
}
