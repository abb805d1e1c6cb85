package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zgrid/cells"
	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/internal/logging"
)

// frontierItem pairs a queued position with its depth.
type frontierItem struct {
	pos   coord.Pos
	depth int
}

// BFS explores on cells breadth-first from the start position (the origin
// unless WithStart is given) and returns the depth of every cell reached.
//
// A cell's depth is fixed when it is first dequeued. Neighbours are queued in
// up, right, down, left order and only if they hold the on glyph. On a lazy
// grid neighbour cells are computed as they are reached, so WithMaxDepth
// bounds the work on an unbounded grid.
//
// The search stops early once the target is reached, or when the next
// dequeued cell is deeper than the max depth; cells seen so far are returned.
//
// Returns ErrNotFound if the start cell is absent, ErrInitialGlyphMismatch if
// it is not on, and ErrOptionViolation for a negative max depth.
func (g *Grid) BFS(opts ...SearchOption) (map[coord.Pos]int, error) {
	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	glyph, err := g.At(cfg.start)
	if err != nil {
		return nil, err
	}
	if glyph != g.on {
		logging.Logf("grid: expected initial glyph %q, got %q", g.on, glyph)
		return nil, fmt.Errorf("%w: %q at %v", ErrInitialGlyphMismatch, glyph, cfg.start)
	}

	seen := make(map[coord.Pos]int)
	queue := []frontierItem{{pos: cfg.start}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if cfg.hasMax && item.depth > cfg.maxDepth {
			return seen, nil
		}
		if _, ok := seen[item.pos]; ok {
			continue
		}
		seen[item.pos] = item.depth
		if cfg.hasTarget && item.pos == cfg.target {
			return seen, nil
		}
		for _, q := range coord.Near4(item.pos) {
			if _, ok := seen[q]; ok {
				continue
			}
			v, err := g.store.Lookup(q)
			if errors.Is(err, cells.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if v == g.on {
				queue = append(queue, frontierItem{pos: q, depth: item.depth + 1})
			}
		}
	}

	return seen, nil
}
