// Command zgrid loads a grid literal and runs grid queries on it.
//
//	zgrid [flags] [file]
//
// The grid is read from file, or from stdin when no file is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/grid"
	"github.com/katalvlaran/zgrid/internal/logging"
)

// config holds the parsed command line.
type config struct {
	on, off  rune
	mode     string
	from, to coord.Pos
	hasTo    bool
	maxDepth int
	extra    []rune
	plain    bool
	clear    bool
	tui      bool
	quiet    bool
	file     string
}

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logging.Logf("zgrid: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading grid: %w", err)
	}
	g := grid.Parse(string(text), grid.WithOn(cfg.on), grid.WithOff(cfg.off))

	var drawOpts []grid.DrawOption
	if cfg.plain {
		drawOpts = append(drawOpts, grid.WithPlain())
	}
	if cfg.clear {
		drawOpts = append(drawOpts, grid.WithClear())
	}

	switch cfg.mode {
	case "draw":
		return show(g, stdout, cfg, drawOpts)
	case "count":
		w, err := g.Width()
		if err != nil {
			return err
		}
		h, err := g.Height()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "cells %d on %d size %dx%d\n", g.Len(), g.CountOn(), w, h)
		return nil
	case "bfs":
		return runBFS(g, stdout, cfg, drawOpts)
	case "path":
		if !cfg.hasTo {
			return errors.New("path mode needs -to")
		}
		path, err := g.Path(cfg.to, cfg.from)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "path length %d\n", len(path)-1)
		drawOpts = append(drawOpts, grid.WithOverlay(grid.PathOverlay(path, 'x')))
		return show(g, stdout, cfg, drawOpts)
	case "components":
		gg := g.Graph(cfg.extra...)
		comps := gg.ConnectedComponents()
		fmt.Fprintf(stdout, "components %d\n", len(comps))
		for i, c := range comps {
			fmt.Fprintf(stdout, "%d %v size %d\n", i, c[0], len(c))
		}
		markers := gg.Markers()
		glyphs := make([]rune, 0, len(markers))
		for r := range markers {
			glyphs = append(glyphs, r)
		}
		slices.Sort(glyphs)
		for _, r := range glyphs {
			fmt.Fprintf(stdout, "marker %c %v\n", r, markers[r])
		}
		return nil
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}

func runBFS(g *grid.Grid, stdout io.Writer, cfg config, drawOpts []grid.DrawOption) error {
	opts := []grid.SearchOption{grid.WithStart(cfg.from)}
	if cfg.hasTo {
		opts = append(opts, grid.WithTarget(cfg.to))
	}
	if cfg.maxDepth >= 0 {
		opts = append(opts, grid.WithMaxDepth(cfg.maxDepth))
	}
	depth, err := g.BFS(opts...)
	if err != nil {
		return err
	}

	deepest := 0
	overlay := make(map[coord.Pos]rune, len(depth))
	for p, d := range depth {
		deepest = max(deepest, d)
		overlay[p] = rune('0' + d%10)
	}
	fmt.Fprintf(stdout, "reached %d max depth %d\n", len(depth), deepest)
	if cfg.hasTo {
		if d, ok := depth[cfg.to]; ok {
			fmt.Fprintf(stdout, "target depth %d\n", d)
		} else {
			fmt.Fprintln(stdout, "target not reached")
		}
	}
	drawOpts = append(drawOpts, grid.WithOverlay(overlay))
	return show(g, stdout, cfg, drawOpts)
}

// show draws the grid as text, or in a terminal screen with -tui.
func show(g *grid.Grid, stdout io.Writer, cfg config, drawOpts []grid.DrawOption) error {
	if cfg.quiet {
		return nil
	}
	if !cfg.tui {
		return g.Draw(stdout, drawOpts...)
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	if err := g.DrawScreen(screen, append(drawOpts, grid.WithClear())...); err != nil {
		return err
	}
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("zgrid", flag.ContinueOnError)
	var (
		on       = fs.String("on", string(grid.DefaultOn), "on glyph")
		off      = fs.String("off", string(grid.DefaultOff), "off glyph")
		mode     = fs.String("mode", "draw", "draw, bfs, path, count or components")
		from     = fs.String("from", "0,0", "start position x,y")
		to       = fs.String("to", "", "target position x,y")
		maxDepth = fs.Int("max-depth", -1, "bfs depth limit, negative for none")
		extra    = fs.String("extra", "", "extra node glyphs for components")
		plain    = fs.Bool("plain", false, "draw raw glyphs")
		clr      = fs.Bool("clear", false, "clear the terminal before drawing")
		tui      = fs.Bool("tui", false, "draw in an interactive terminal screen")
		quiet    = fs.Bool("quiet", false, "do not draw the grid")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		mode:     *mode,
		maxDepth: *maxDepth,
		extra:    []rune(*extra),
		plain:    *plain,
		clear:    *clr,
		tui:      *tui,
		quiet:    *quiet,
		file:     fs.Arg(0),
	}
	var err error
	if cfg.on, err = glyphFlag("on", *on); err != nil {
		return cfg, err
	}
	if cfg.off, err = glyphFlag("off", *off); err != nil {
		return cfg, err
	}
	if cfg.from, err = parsePos(*from); err != nil {
		return cfg, fmt.Errorf("-from: %w", err)
	}
	if *to != "" {
		if cfg.to, err = parsePos(*to); err != nil {
			return cfg, fmt.Errorf("-to: %w", err)
		}
		cfg.hasTo = true
	}
	return cfg, nil
}

func glyphFlag(name, v string) (rune, error) {
	r := []rune(v)
	if len(r) != 1 {
		return 0, fmt.Errorf("-%s must be a single character, got %q", name, v)
	}
	return r[0], nil
}

// parsePos reads "x,y".
func parsePos(s string) (coord.Pos, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return coord.Pos{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return coord.Pos{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return coord.Pos{}, err
	}
	return coord.P(x, y), nil
}
