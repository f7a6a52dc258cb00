package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nakamura9310/snapmark/app"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List active displays with bounds and DPI scale",
	RunE:  runDisplays,
}

func init() {
	rootCmd.AddCommand(displaysCmd)
}

func runDisplays(cmd *cobra.Command, args []string) error {
	c := app.BuildContainer(cfg)
	defer c.Close()

	displays, err := c.Provider.Displays()
	if err != nil {
		return err
	}
	for _, d := range displays {
		primary := ""
		if d.Primary {
			primary = " (primary)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "display %d%s: %.0fx%.0f at (%.0f,%.0f) scale %.2fx%.2f\n",
			d.Index, primary,
			d.Bounds.Width(), d.Bounds.Height(),
			d.Bounds.MinX, d.Bounds.MinY,
			d.ScaleX, d.ScaleY)
	}
	return nil
}
