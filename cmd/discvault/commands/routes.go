package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discvault/web/app"
)

func routesCmd() *cobra.Command {
	var (
		resolve string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the client route table or resolve a path against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if resolve != "" {
				m, ok := app.Routes.Resolve(resolve)
				if !ok {
					return fmt.Errorf("no route matches %s", resolve)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(app.Routes.Manifest())
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tNAME\tVIEW\tCHUNK")
			for _, e := range app.Routes.Manifest() {
				chunk := e.Chunk
				if chunk == "" {
					chunk = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Path, e.Name, e.View, chunk)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&resolve, "resolve", "", "resolve a request path to its route")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the client manifest as JSON")
	return cmd
}
