package grid

import (
	"errors"
	"io"
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/zgrid/cells"
	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/render"
)

// view resolves the draw options into the set of cells to render.
func (g *Grid) view(opts []DrawOption) (map[coord.Pos]rune, drawConfig, error) {
	var cfg drawConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg, cfg.err
	}

	switch {
	case cfg.overlay != nil:
		out := g.Cells()
		maps.Copy(out, cfg.overlay)
		return out, cfg, nil
	case cfg.window != nil:
		out := make(map[coord.Pos]rune, len(cfg.window))
		for _, p := range cfg.window {
			v, err := g.store.Lookup(p)
			if errors.Is(err, cells.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, cfg, err
			}
			out[p] = v
		}
		return out, cfg, nil
	}
	return g.Cells(), cfg, nil
}

// Draw writes the grid to w using render.Text. By default the whole grid is
// drawn with pretty symbols; see the DrawOption constructors for the rest.
// Returns render.ErrNothingToDraw if no cell is selected.
func (g *Grid) Draw(w io.Writer, opts ...DrawOption) error {
	sel, cfg, err := g.view(opts)
	if err != nil {
		return err
	}
	return render.Text(w, sel, render.Options{
		Plain:   cfg.plain,
		Clear:   cfg.clear,
		Symbols: cfg.symbols,
	})
}

// DrawScreen paints the selected cells into s with render.DefaultStyles,
// the top-left of the bounding box at the screen origin.
func (g *Grid) DrawScreen(s tcell.Screen, opts ...DrawOption) error {
	sel, cfg, err := g.view(opts)
	if err != nil {
		return err
	}
	return render.Screen(s, sel, render.ScreenOptions{
		Clear:  cfg.clear,
		Styles: render.DefaultStyles(),
	})
}
