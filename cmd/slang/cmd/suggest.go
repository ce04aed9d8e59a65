package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "suggest <query>",
		Aliases: []string{"s"},
		Short:   "List dictionary terms matching a query",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLookup(cmd.Context(), opts)
			res, err := l.Suggest(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), res.Terms)
			}
			printSuggestions(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of suggestions (1-10)")

	return cmd
}
