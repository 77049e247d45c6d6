package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a grammar for left recursion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.GetString("parse.grammar")
			grammar, err := grammarByName(name)
			if err != nil {
				return err
			}
			depth := a.cfg.GetInt("check.depth")
			verdict := grammar.CheckLeftRecursion(depth)
			a.log.Debug().Str("grammar", name).Int("depth", depth).Stringer("verdict", verdict).Msg("left recursion check")

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, verdict)
			if verdict.IsNotOk() {
				return fmt.Errorf("grammar %s may be left recursive", name)
			}
			return nil
		},
	}
	cmd.Flags().String("grammar", "precedence", "grammar to check (precedence, ambiguous)")
	cmd.Flags().Int("depth", 64, "how many levels of rules to walk through")
	return cmd
}
