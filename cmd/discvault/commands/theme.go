package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discvault/pkg/theme"
)

func themeCmd() *cobra.Command {
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Render theme tokens as CSS custom properties or a Tailwind config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th := theme.Default()
			if file != "" {
				loaded, err := theme.Load(file)
				if err != nil {
					return err
				}
				th = loaded
			}

			out := cmd.OutOrStdout()
			switch format {
			case "css":
				fmt.Fprint(out, th.CSS())
			case "tailwind":
				data, err := th.TailwindConfig()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unknown format %q (want css or tailwind)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "css", "output format: css or tailwind")
	cmd.Flags().StringVar(&file, "file", "", "TOML token file merged over the defaults")
	return cmd
}
