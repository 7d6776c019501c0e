// Command mazegen generates a maze offline and writes it, and optionally its solution, as PNG.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/spf13/cobra"
)

var ErrNoSolution = errors.New("maze has no path between its corners")

type options struct {
	width       int
	height      int
	seed        int64
	algorithm   string
	out         string
	solutionOut string
	print       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "mazegen",
		Short:         "Generate a maze and render it as PNG",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			log, err := logger.New("MAZEGEN", logger.ColorBlue, stderr)
			if err != nil {
				return err
			}
			return run(opts, stdout, log)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", 25, "maze width in cells")
	flags.IntVar(&opts.height, "height", 25, "maze height in cells")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (default: current time)")
	flags.StringVar(&opts.algorithm, "algorithm", string(maze.DFS), "carving algorithm: dfs or wilson")
	flags.StringVar(&opts.out, "out", "maze.png", "path of the maze image")
	flags.StringVar(&opts.solutionOut, "solution-out", "", "path of the solved maze image; skipped when empty")
	flags.BoolVar(&opts.print, "print", false, "also print the maze as text")

	return cmd
}

func run(opts *options, stdout io.Writer, log *logger.Logger) error {
	algorithm, err := maze.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}

	m, err := maze.New(opts.width, opts.height)
	if err != nil {
		return err
	}

	stats, err := m.Generate(maze.NewGenerator(maze.WithSeed(opts.seed), maze.WithAlgorithm(algorithm)))
	if err != nil {
		return err
	}
	log.WithField("seed", opts.seed).
		Info(fmt.Sprintf("Generated %dx%d %s maze: %d nodes, %d links", opts.width, opts.height, algorithm, stats.Nodes, stats.Links))

	if opts.print {
		fmt.Fprint(stdout, m.String())
	}

	if err := render.SavePNG(opts.out, m, nil); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Maze written to %s", opts.out))

	if opts.solutionOut == "" {
		return nil
	}

	path := m.Solve()
	if path == nil {
		return ErrNoSolution
	}
	if err := render.SavePNG(opts.solutionOut, m, path); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Solution of length %d written to %s", len(path), opts.solutionOut))
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		os.Exit(1)
	}
}
