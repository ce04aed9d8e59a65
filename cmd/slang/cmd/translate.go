package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newTranslateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "translate <phrase>",
		Aliases: []string{"t"},
		Short:   "Translate a slang phrase",
		Example: "  slang translate kya scene hai\n  slang -s http://localhost:5000 translate bhidu",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLookup(cmd.Context(), opts)
			res, err := l.Translate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printTranslation(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
