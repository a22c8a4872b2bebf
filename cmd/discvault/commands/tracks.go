package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discvault/internal/tracks"
)

func tracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "Tracklist utilities",
	}

	cmd.AddCommand(tracksParseCmd())
	return cmd
}

func tracksParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a pasted CSV tracklist and print the recovered tracks as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read tracklist: %w", err)
			}

			parsed, err := tracks.ParseCSV(string(data))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parsed)
		},
	}
}
