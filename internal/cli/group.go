package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/builder"
	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/internal/config"
)

// loadGroup builds the group described by --file and --generator. It
// returns ctx.Err() as soon as ctx is done, leaving generation to finish in
// the background.
func (c *CLI) loadGroup(ctx context.Context) (*group.Group, error) {
	var notation []string
	if c.file != "" {
		def, err := config.Load(c.file)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded definition", "file", c.file, "name", def.Name, "generators", len(def.Generators))
		notation = append(notation, def.Generators...)
	}
	notation = append(notation, c.generators...)

	return await(ctx, func() (*group.Group, error) {
		return builder.BuildGroup([]group.Option{group.WithLogger(c.Logger)}, nil, builder.Parsed(notation...))
	})
}

// await runs fn in a goroutine and waits for its result or for ctx.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.val, r.err
	}
}

// orderCommand creates the "order" command.
func (c *CLI) orderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the number of elements of a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGroup(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Order())
			return nil
		},
	}
}

// elementsCommand creates the "elements" command.
func (c *CLI) elementsCommand() *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List all elements in cycle notation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGroup(cmd.Context())
			if err != nil {
				return err
			}
			els := g.Elements()
			if sorted {
				sortCanonical(els)
			}
			out := cmd.OutOrStdout()
			for _, p := range els {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&sorted, "sort", "s", false, "print in canonical order instead of generation order")

	return cmd
}

// orbitCommand creates the "orbit POINT" command.
func (c *CLI) orbitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orbit POINT",
		Short: "Print the orbit of a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := strconv.Atoi(args[0])
			if err != nil || point < 0 {
				return fmt.Errorf("invalid point %q: must be a non-negative integer", args[0])
			}
			g, err := c.loadGroup(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range g.Orbit(point) {
				if i > 0 {
					fmt.Fprint(out, " ")
				}
				fmt.Fprint(out, x)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
