package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/katalvlaran/ibpsetup/problem"
	"github.com/katalvlaran/ibpsetup/topology"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func newProblemCmd(a *app) *cobra.Command {
	var (
		outDir string
		jobs   int
		format string
	)
	cmd := &cobra.Command{
		Use:   "problem FILE...",
		Short: "Assemble topology files into problem summaries",
		Long: `Each topology file is loaded, enumerated and assembled into a problem.
The summaries go to stdout in argument order, or to DIR/<name>.<format>
when --out is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marshal, ext, err := encoderFor(format)
			if err != nil {
				return err
			}
			summaries, err := assemble(cmd.Context(), a.log, args, jobs)
			if err != nil {
				return err
			}

			if outDir == "" {
				for i, s := range summaries {
					data, err := marshal(s)
					if err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
					if len(summaries) > 1 && format == "yaml" {
						data = append([]byte("---\n"), data...)
					}
					if _, err = a.out.Write(data); err != nil {
						return err
					}
				}
				return nil
			}

			if err = os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}
			for i, s := range summaries {
				data, err := marshal(s)
				if err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				path := filepath.Join(outDir, s.Name+ext)
				if err = os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				a.log.Info("problem written", slog.String("source", args[i]), slog.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory for one summary file per topology")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "topologies assembled concurrently")
	cmd.Flags().StringVar(&format, "format", "yaml", "summary format (yaml|json)")

	return cmd
}

// assemble loads every path concurrently, at most jobs at a time, and
// returns the summaries in path order. The first failure cancels the rest;
// two paths defining the same problem name fail as well.
func assemble(ctx context.Context, log *slog.Logger, paths []string, jobs int) ([]problem.Summary, error) {
	if jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	summaries := make([]problem.Summary, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := topology.Load(path, topology.WithLogger(log))
			if err != nil {
				return err
			}
			p, err := f.Problem()
			if err != nil {
				return err
			}
			summaries[i] = p.Summary()
			log.Debug("topology assembled", slog.String("path", path), slog.Int("integrals", len(summaries[i].Integrals)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Summaries are keyed by name once written to --out.
	seen := make(map[string]string, len(paths))
	for i, s := range summaries {
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%s and %s both define problem %q", prev, paths[i], s.Name)
		}
		seen[s.Name] = paths[i]
	}

	return summaries, nil
}

// encoderFor returns the marshaller and file extension for format.
func encoderFor(format string) (func(problem.Summary) ([]byte, error), string, error) {
	switch format {
	case "yaml":
		return func(s problem.Summary) ([]byte, error) {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(s); err != nil {
				return nil, err
			}
			if err := enc.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}, ".yaml", nil
	case "json":
		return func(s problem.Summary) ([]byte, error) {
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(data, '\n'), nil
		}, ".json", nil
	default:
		return nil, "", fmt.Errorf("invalid --format %q: want yaml or json", format)
	}
}
