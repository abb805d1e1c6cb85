// Package coord defines integer grid positions and the direction algebra used
// by the rest of zgrid.
//
// What:
//
//   - Pos is an immutable (column, row) pair. X grows to the right, Y grows
//     downward, so "up" is Pos{0, -1}.
//   - Positions behave like Gaussian integers: Add translates, Mul multiplies
//     as complex numbers, and multiplying by a unit rotates by 90°.
//   - Eight canonical direction vectors, reachable by arrow glyph, English
//     word, single letter, or compass point through one lookup table.
//   - Range enumerates a half-open rectangle of positions in row-major order.
//
// Turning:
//
//	heading := coord.Up
//	heading = heading.Rotate(coord.TurnRight) // coord.Right
//	heading = heading.TurnAround()            // coord.Left
//
// Errors:
//
//   - ErrArgumentCount: Range called with zero or more than three arguments.
//   - ErrZeroStep: Range step has a zero component.
//   - ErrUnknownDirection: alias not present in the direction table.
//   - ErrUnsupportedKey: FromAny given a value that is not a position.
package coord
