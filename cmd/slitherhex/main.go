// SPDX-License-Identifier: MIT

// Command slitherhex generates, positions and renders hexagonal Slitherlink
// puzzles.
//
// Usage:
//
//	slitherhex generate [-config f] [-layers k] [-seed s] [-coverage c] [-hide h] [-blank] [-o out.txt]
//	slitherhex coords   -vertices V [-scale s]
//	slitherhex render   [-config f] [-style f] [-ids] [-watch] -in puzzle.txt -o out.svg|out.png
//
// Puzzle files ending in .zst are read and written zstd-compressed.
//
// Every subcommand accepts -v for development logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/builder"
	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/internal/config"
	"github.com/j-dobrzanski/Slitherlink/puzzlefile"
	"github.com/j-dobrzanski/Slitherlink/render"
)

var errUsage = errors.New("usage: slitherhex generate|coords|render [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "slitherhex:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "generate":
		return runGenerate(args[1:], stdout)
	case "coords":
		return runCoords(args[1:], stdout)
	case "render":
		return runRender(args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setFlags reports which flags were given explicitly, so they can override
// configuration values.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func runGenerate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "YAML config file (default $"+config.EnvPath+")")
		layers   = fs.Int("layers", 0, "number of wheel layers k (V = 6k²)")
		seed     = fs.Int64("seed", 0, "random seed")
		coverage = fs.Float64("coverage", 0, "share of faces enclosed by the loop, (0,1]")
		hide     = fs.Float64("hide", 0, "probability of hiding each clue, [0,1]")
		blank    = fs.Bool("blank", false, "write the blank wheel only, without loop or clues")
		out      = fs.String("o", "", "output file (default stdout)")
		verbose  = fs.Bool("v", false, "development logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	set := setFlags(fs)
	g := &cfg.Generate
	if set["layers"] {
		g.Layers = *layers
	}
	if set["seed"] {
		g.Seed = *seed
	}
	if set["coverage"] {
		g.Coverage = *coverage
	}
	if set["hide"] {
		g.HideRatio = *hide
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	cons := []builder.Constructor{builder.HexWheel(g.Layers)}
	if !*blank {
		cons = append(cons, builder.RandomLoop(), builder.Clues())
	}
	p, err := builder.BuildPuzzle([]builder.BuilderOption{
		builder.WithSeed(g.Seed),
		builder.WithCoverage(g.Coverage),
		builder.WithHideRatio(g.HideRatio),
		builder.WithLogger(logger),
	}, cons...)
	if err != nil {
		return err
	}

	opts := []puzzlefile.Option{puzzlefile.WithLogger(logger)}
	if *out == "" {
		err = puzzlefile.Write(stdout, p, opts...)
	} else {
		err = puzzlefile.WriteFile(*out, p, opts...)
	}
	if err != nil {
		return err
	}
	logger.Info("puzzle generated",
		zap.Int("layers", g.Layers),
		zap.Int64("seed", g.Seed),
		zap.Int("vertices", p.NumVertices()),
		zap.Int("loop_edges", len(p.SolutionEdges())),
		zap.String("output", *out),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

func runCoords(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("coords", flag.ContinueOnError)
	var (
		vertices = fs.Int("vertices", 0, "vertex count V, must be 6k²")
		scale    = fs.Float64("scale", 1, "multiply coordinates by this factor")
		verbose  = fs.Bool("v", false, "development logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pts, err := hexwheel.Generate(*vertices, hexwheel.WithLogger(logger))
	if err != nil {
		return err
	}
	hexwheel.ScaleInPlace(pts, *scale)
	for i, pt := range pts {
		if _, err = fmt.Fprintf(stdout, "%d %g %g\n", i, pt.X, pt.Y); err != nil {
			return err
		}
	}

	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var (
		cfgPath   = fs.String("config", "", "YAML config file (default $"+config.EnvPath+")")
		stylePath = fs.String("style", "", "YAML style file, overrides the config's render section")
		in        = fs.String("in", "", "puzzle file")
		out       = fs.String("o", "", "output image, .svg or .png")
		ids       = fs.Bool("ids", false, "label vertex, edge and face ids")
		watch     = fs.Bool("watch", false, "re-render whenever the puzzle file changes, until interrupted")
		verbose   = fs.Bool("v", false, "development logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("render needs -in and -o: %w", errUsage)
	}
	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	style := cfg.Render
	if *stylePath != "" {
		if style, err = render.LoadStyle(*stylePath); err != nil {
			return err
		}
	}
	if setFlags(fs)["ids"] {
		style.ShowIDs = *ids
	}

	if err = renderFile(*in, *out, style, logger); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return watchFile(ctx, *in, logger, func() error {
		return renderFile(*in, *out, style, logger)
	})
}

// renderFile reads the puzzle at in, places it if needed and draws it to out.
func renderFile(in, out string, style render.Style, logger *zap.Logger) error {
	var write func(io.Writer, *render.Scene) error
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		write = render.WritePNG
	case ".svg":
		write = render.WriteSVG
	default:
		return fmt.Errorf("output %q: want .svg or .png: %w", out, errUsage)
	}

	p, err := puzzlefile.ReadFile(in, puzzlefile.WithLogger(logger))
	if err != nil {
		return err
	}
	if err = hexwheel.Apply(p, hexwheel.WithLogger(logger)); err != nil {
		return err
	}
	sc, err := render.NewScene(p, style)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	err = write(f, sc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("puzzle rendered",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("vertices", p.NumVertices()),
		zap.Bool("ids", style.ShowIDs))

	return nil
}
