package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/sector"
	"github.com/spf13/cobra"
)

// enumerateFlags holds the flag values of the enumerate command.
type enumerateFlags struct {
	sector     string
	n          int
	free       bool
	rmin, rmax int
	smin, smax int
	dmin, dmax int
	count      bool
}

func newEnumerateCmd(a *app) *cobra.Command {
	var f enumerateFlags
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Print the index tuples admitted by rank, numerator and dot bounds",
		Long: `Without --sector, every one of --n positions may carry any sign.
With --sector, active positions carry values >= 0 and inactive ones <= 0;
add --free to let the active positions carry any sign (zeros elsewhere).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := f.bounds(cmd)
			ts, err := f.run(b)
			if err != nil {
				return err
			}
			a.log.Debug("enumeration done", slog.String("bounds", b.String()), slog.Int("count", len(ts)))
			if f.count {
				_, err = fmt.Fprintln(a.out, len(ts))
				return err
			}
			for _, t := range ts {
				if _, err = fmt.Fprintln(a.out, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.sector, "sector", "", "sector mask, e.g. 1110")
	fl.IntVar(&f.n, "n", 0, "number of positions when no --sector is given")
	fl.BoolVar(&f.free, "free", false, "with --sector: any sign on the active positions")
	fl.IntVar(&f.rmin, "rmin", 1, "minimum rank")
	fl.IntVar(&f.rmax, "rmax", 1, "maximum rank")
	fl.IntVar(&f.smin, "smin", 0, "minimum numerator count")
	fl.IntVar(&f.smax, "smax", 0, "maximum numerator count")
	fl.IntVar(&f.dmin, "dmin", 0, "minimum dot count")
	fl.IntVar(&f.dmax, "dmax", 0, "maximum dot count (default rmax-1)")
	fl.BoolVar(&f.count, "count", false, "print only the number of tuples")

	return cmd
}

// bounds resolves the flag values; dmax follows rmax unless given.
func (f enumerateFlags) bounds(cmd *cobra.Command) indices.Bounds {
	opts := []indices.BoundsOption{
		indices.WithRank(f.rmin, f.rmax),
		indices.WithNumerators(f.smin, f.smax),
	}
	if cmd.Flags().Changed("dmax") {
		opts = append(opts, indices.WithDots(f.dmin, f.dmax))
	} else if f.dmin != 0 {
		opts = append(opts, indices.WithDots(f.dmin, f.rmax-1))
	}

	return indices.NewBounds(f.rmax, f.smax, opts...)
}

// run dispatches to the generator selected by the flags.
func (f enumerateFlags) run(b indices.Bounds) ([]indices.Tuple, error) {
	if f.sector == "" {
		if f.free {
			return nil, errors.New("--free requires --sector")
		}
		if f.n <= 0 {
			return nil, errors.New("either --sector or a positive --n is required")
		}
		return indices.All(f.n, b)
	}
	mask, err := sector.Parse(f.sector)
	if err != nil {
		return nil, err
	}
	if f.free {
		n := mask.Active()
		if f.n > 0 {
			n = f.n
		}
		return indices.ForSector(mask, n, b)
	}
	if f.n > 0 && f.n != mask.Len() {
		return nil, fmt.Errorf("--n=%d disagrees with --sector %s", f.n, mask)
	}

	return indices.Generate(mask, b)
}
