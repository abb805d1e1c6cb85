package coord

import (
	"fmt"
	"strings"
)

// Canonical direction vectors. Rows grow downward.
var (
	Up        = Pos{X: 0, Y: -1}
	Right     = Pos{X: 1, Y: 0}
	Down      = Pos{X: 0, Y: 1}
	Left      = Pos{X: -1, Y: 0}
	UpRight   = Pos{X: 1, Y: -1}
	DownRight = Pos{X: 1, Y: 1}
	DownLeft  = Pos{X: -1, Y: 1}
	UpLeft    = Pos{X: -1, Y: -1}
)

// Compass-point and single-letter names for the cardinal directions.
var (
	N, North, U = Up, Up, Up
	E, East, R  = Right, Right, Right
	S, South, D = Down, Down, Down
	W, West, L  = Left, Left, Left
)

// Rotation constants for Pos.Rotate: multiplying by i, -i and -1.
var (
	TurnRight  = Pos{X: 0, Y: 1}
	TurnLeft   = Pos{X: 0, Y: -1}
	TurnAround = Pos{X: -1, Y: 0}
)

// Cardinal lists the four orthogonal directions in up, right, down, left order.
var Cardinal = [4]Pos{Up, Right, Down, Left}

// Compass lists all eight directions clockwise starting from Up.
var Compass = [8]Pos{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// aliases maps every accepted spelling to one of the eight vectors.
var aliases = buildAliases()

func buildAliases() map[string]Pos {
	table := make(map[string]Pos, 64)
	add := func(v Pos, names ...string) {
		for _, name := range names {
			table[name] = v
			table[strings.ToUpper(name)] = v
		}
	}
	add(Up, "^", "up", "north", "u", "n")
	add(Right, ">", "right", "east", "r", "e")
	add(Down, "v", "down", "south", "d", "s")
	add(Left, "<", "left", "west", "l", "w")
	add(UpRight, "up-right", "northeast", "ur", "ne")
	add(DownRight, "down-right", "southeast", "dr", "se")
	add(DownLeft, "down-left", "southwest", "dl", "sw")
	add(UpLeft, "up-left", "northwest", "ul", "nw")

	return table
}

// Direction resolves an alias such as "^", "up", "UP", "U" or "N".
// Every word and letter alias is accepted in lower and upper case.
func Direction(alias string) (Pos, error) {
	if v, ok := aliases[alias]; ok {
		return v, nil
	}
	return Pos{}, fmt.Errorf("%w: %q", ErrUnknownDirection, alias)
}

// DirectionOf resolves a string alias, a rune alias, or a raw unit vector given
// as a Pos or complex number. A raw vector must be one of the eight directions.
// Since rune is int32, an int32 key is read as a glyph, not as a column.
func DirectionOf(key any) (Pos, error) {
	switch k := key.(type) {
	case string:
		return Direction(k)
	case rune:
		return Direction(string(k))
	}
	p, err := FromAny(key)
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %v", ErrUnknownDirection, key)
	}
	for _, v := range Compass {
		if v == p {
			return v, nil
		}
	}

	return Pos{}, fmt.Errorf("%w: %v is not a unit vector", ErrUnknownDirection, p)
}

// IsDirection reports whether alias is in the direction table.
func IsDirection(alias string) bool {
	_, ok := aliases[alias]
	return ok
}

// Near4 returns the orthogonal neighbours of p: up, right, down, left.
func Near4(p Pos) []Pos {
	return []Pos{p.Add(Up), p.Add(Right), p.Add(Down), p.Add(Left)}
}

// Near8 returns the eight neighbours of p in row-major order, skipping p.
func Near8(p Pos) []Pos {
	return []Pos{
		p.Add(UpLeft), p.Add(Up), p.Add(UpRight),
		p.Add(Left), p.Add(Right),
		p.Add(DownLeft), p.Add(Down), p.Add(DownRight),
	}
}
