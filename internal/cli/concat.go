package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/internal/config"
)

// concatCommand creates the "concat" command.
func (c *CLI) concatCommand() *cobra.Command {
	var lhsFile, rhsFile string
	cmd := &cobra.Command{
		Use:   "concat",
		Short: "Concatenate the symmetries of two group definitions",
		Long: `Concat removes each definition's excluded positions, places the two
remaining sequences side by side and prints the generators of the resulting
group, one per line. The left sequence length is taken from the left
definition's size (or its span) minus its excludes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lhsFile == "" || rhsFile == "" {
				return errors.New("both --lhs-file and --rhs-file are required")
			}
			start := time.Now()

			lhsDef, lhs, err := c.loadDefinition(cmd.Context(), lhsFile)
			if err != nil {
				return err
			}
			rhsDef, rhs, err := c.loadDefinition(cmd.Context(), rhsFile)
			if err != nil {
				return err
			}
			lhsSize, err := lhsDef.Remaining()
			if err != nil {
				return err
			}

			out, err := await(cmd.Context(), func() (*group.Group, error) {
				return group.Concatenate(lhs, lhsSize, rhs, lhsDef.Excludes, rhsDef.Excludes, group.WithLogger(c.Logger))
			})
			if err != nil {
				return fmt.Errorf("concatenate: %w", err)
			}
			w := cmd.OutOrStdout()
			for _, p := range out.Generators() {
				fmt.Fprintln(w, p)
			}
			c.Logger.Infof("Concatenated group of order %d (%s)", out.Order(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&lhsFile, "lhs-file", "", "left group definition (YAML or TOML)")
	cmd.Flags().StringVar(&rhsFile, "rhs-file", "", "right group definition (YAML or TOML)")

	return cmd
}

// loadDefinition loads a definition file and its group.
func (c *CLI) loadDefinition(ctx context.Context, path string) (*config.Definition, *group.Group, error) {
	def, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := await(ctx, func() (*group.Group, error) {
		return def.Group(group.WithLogger(c.Logger))
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, g, nil
}
