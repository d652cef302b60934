package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/go-drift/valuebar/pkg/graphics"
	"github.com/go-drift/valuebar/pkg/raster"
)

func newRenderCmd() *cobra.Command {
	var (
		width      float64
		height     float64
		value      float64
		out        string
		background string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a ValueBar to PNG",
		Args:  cobra.NoArgs,
		Long: `Render a ValueBar to a PNG file.

Without --width/--height the bar uses its default size of 200x48 dp at the
configured density.`,
		Example: `  valuebar render                          # valuebar.png from valuebar.yaml
  valuebar render -c bar.toml -o bar.png   # Explicit config and output
  valuebar render --value 42 --width 400   # Override value and width`,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := loadAttributes()
			if err != nil {
				return err
			}
			bar, err := attrs.Build()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("value") {
				bar.SetValue(value)
			}

			w, h := width, height
			if w <= 0 {
				w = math.Inf(1)
			}
			if h <= 0 {
				h = math.Inf(1)
			}
			size := bar.Layout(w, h)

			canvas := raster.NewCanvas(size)
			if background != "" {
				bg, err := graphics.ParseHexColor(background)
				if err != nil {
					return fmt.Errorf("--background: %w", err)
				}
				canvas.Clear(bg)
			}
			bar.Paint(canvas)

			if err := canvas.SavePNG(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%gx%g, value %s)\n",
				out, size.Width, size.Height, formatValue(bar.Value()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "Width in pixels (default 200dp)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in pixels (default 48dp)")
	cmd.Flags().Float64Var(&value, "value", 0, "Override the configured value")
	cmd.Flags().StringVarP(&out, "out", "o", "valuebar.png", "Output PNG path")
	cmd.Flags().StringVar(&background, "background", "", "Background color (#RRGGBB); transparent when empty")

	return cmd
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
