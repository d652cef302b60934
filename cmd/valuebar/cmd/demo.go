package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/valuebar/cmd/valuebar/internal/termhost"
	"github.com/go-drift/valuebar/pkg/graphics"
)

// demoDensity scales dp sizes down to terminal pixels, where one cell is
// one pixel wide and two tall.
const demoDensity = 0.3

func newDemoCmd() *cobra.Command {
	var (
		rows       int
		density    float64
		background string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Preview a ValueBar interactively in the terminal",
		Args:  cobra.NoArgs,
		Long: `Preview a ValueBar in the terminal.

Drag with the mouse to select a value. The arrow keys animate the value in
steps of a tenth of the range, and u replays the value from the minimum.`,
		Example: `  valuebar demo                # Defaults or valuebar.yaml
  valuebar demo --rows 5       # Taller bar
  valuebar demo -c bar.toml    # Explicit config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := loadAttributes()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("density") || attrs.Density == 0 {
				attrs.Density = density
			}
			bar, err := attrs.Build()
			if err != nil {
				return err
			}

			bg, err := graphics.ParseHexColor(background)
			if err != nil {
				return fmt.Errorf("--background: %w", err)
			}
			return termhost.Run(bar, termhost.Options{Rows: rows, Background: bg})
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 3, "Bar height in terminal rows")
	cmd.Flags().Float64Var(&density, "density", demoDensity, "Pixels per dp")
	cmd.Flags().StringVar(&background, "background", "#1e1e2e", "Background color")

	return cmd
}
