package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/canon"
	"github.com/katalvlaran/permgroup/perm"
)

// canonicalizeCommand creates the "canonicalize WORD..." command.
func (c *CLI) canonicalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "canonicalize WORD...",
		Short: "Bring a sequence of words into canonical order",
		Long: `Canonicalize sorts the words as far as the group allows and prints the
resulting sign followed by the sequence, e.g. "-1 mu nu".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGroup(cmd.Context())
			if err != nil {
				return err
			}
			seq := slices.Clone(args)
			p := canon.CanonicalizationPermutation(seq, g)
			c.Logger.Debug("canonicalization permutation", "perm", p)
			if err := canon.Apply(seq, p); err != nil {
				return fmt.Errorf("canonicalize %d words: %w", len(seq), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%+d %s\n", p.Sign(), strings.Join(seq, " "))
			return nil
		},
	}
}

// sortCanonical orders permutations by perm.Compare.
func sortCanonical(ps []perm.Permutation) {
	slices.SortFunc(ps, perm.Compare)
}
