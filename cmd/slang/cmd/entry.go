package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newEntryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "entry <term>",
		Short: "Show category, cultural context and examples for a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLookup(cmd.Context(), opts)
			res, err := l.Entry(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), res.Entry)
			}
			printEntry(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
