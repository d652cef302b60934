package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved attributes",
		Args:  cobra.NoArgs,
		Long: `Print the attributes a ValueBar ends up with after the configuration is
applied on top of the defaults. Sizes are in dp.`,
		Example: `  valuebar config                  # YAML
  valuebar config -f toml -c x.yml # Convert to TOML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := loadAttributes()
			if err != nil {
				return err
			}
			resolved, err := attrs.Resolve()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(resolved); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "toml":
				if err := toml.NewEncoder(w).Encode(resolved); err != nil {
					return fmt.Errorf("encode toml: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (want yaml or toml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or toml")
	return cmd
}
