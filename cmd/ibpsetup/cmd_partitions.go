package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ibpsetup/partition"
	"github.com/spf13/cobra"
)

func newPartitionsCmd(a *app) *cobra.Command {
	var (
		minPart  int
		maxParts int
		count    bool
	)
	cmd := &cobra.Command{
		Use:   "partitions N",
		Short: "Print the integer partitions of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid N %q: %w", args[0], err)
			}
			if minPart < 1 {
				return fmt.Errorf("--min must be at least 1, got %d", minPart)
			}
			opts := []partition.Option{partition.WithMin(minPart)}
			if cmd.Flags().Changed("max-parts") {
				opts = append(opts, partition.WithMaxParts(maxParts))
			}
			if count {
				_, err = fmt.Fprintln(a.out, partition.Count(n, opts...))
				return err
			}
			for p := range partition.Partitions(n, opts...) {
				if _, err = fmt.Fprintln(a.out, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minPart, "min", 1, "smallest admissible part")
	cmd.Flags().IntVar(&maxParts, "max-parts", 0, "maximum number of parts (default unlimited)")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of partitions")

	return cmd
}
