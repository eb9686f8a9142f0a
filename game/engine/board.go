package engine

import (
	"fmt"
	"strings"
)

// BoardOptions configure board geometry and invariant checking.
//
// The requested Size is normalized at construction to the nearest odd value
// (1 + 2*(size/2)) so the board always has a single center cell. Wrap is
// reserved: longitude wraparound across the antimeridian is not implemented
// and the flag is never consulted by the invariant check.
type BoardOptions struct {
	Size      int     `json:"size"`
	Tolerance float64 `json:"tolerance"`
	Wrap      bool    `json:"wrap"`
	CenterX   int     `json:"center_x"`
	CenterY   int     `json:"center_y"`
}

// Invalid is a witness of a violation of the board invariant: two placed
// locations whose grid positions contradict their geographic order along
// one direction.
type Invalid struct {
	Direction Direction `json:"direction"`
	X1        int       `json:"x1"`
	Y1        int       `json:"y1"`
	X2        int       `json:"x2"`
	Y2        int       `json:"y2"`
	First     Location  `json:"first"`
	Second    Location  `json:"second"`
}

// Board is a square grid of locations.
//
// The invariant is that every pair of placed locations respects the order of
// their longitudes column-wise and of their latitudes row-wise, within the
// configured tolerance. Committed boards always satisfy the invariant;
// TryPlace rolls back any placement that would break it.
type Board struct {
	// grid[x][y] is the location on column x and row y, or nil if empty.
	grid [][]*Location
	opts BoardOptions
}

// NewBoard creates a board seeded with center in the middle cell.
func NewBoard(center Location, options BoardOptions) *Board {
	half := options.Size / 2
	size := 1 + 2*half
	b := &Board{
		opts: BoardOptions{
			Size:      size,
			Tolerance: options.Tolerance,
			Wrap:      options.Wrap,
			CenterX:   half,
			CenterY:   half,
		},
	}
	b.grid = make([][]*Location, size)
	for x := range b.grid {
		b.grid[x] = make([]*Location, size)
	}
	b.SetCenter(center)
	return b
}

// Options returns the normalized board options.
func (b *Board) Options() BoardOptions {
	return b.opts
}

// SetCenter overwrites the center cell.
func (b *Board) SetCenter(center Location) {
	c := center
	b.grid[b.opts.CenterX][b.opts.CenterY] = &c
}

// Center returns the location at the center cell.
func (b *Board) Center() *Location {
	return b.grid[b.opts.CenterX][b.opts.CenterY]
}

// Coords returns the pair of absolute coordinates for x, y. If centered,
// x and y are interpreted as offsets from the center cell.
func (b *Board) Coords(x, y int, centered bool) (int, int) {
	if centered {
		return b.opts.CenterX + x, b.opts.CenterY + y
	}
	return x, y
}

// Get returns the location at absolute coordinates x, y, or nil if the cell
// is empty. Fails with ErrOutOfBounds if x or y fall outside the grid.
func (b *Board) Get(x, y int) (*Location, error) {
	if x < 0 || x >= b.opts.Size || y < 0 || y >= b.opts.Size {
		return nil, fmt.Errorf("%w: x=%d, y=%d", ErrOutOfBounds, x, y)
	}
	return b.grid[x][y], nil
}

// Put places location at absolute coordinates x, y without checking the
// invariant. Fails with ErrCellOccupied if the cell is taken and force is
// false. A nil location clears the cell.
func (b *Board) Put(location *Location, x, y int, force bool) error {
	current, err := b.Get(x, y)
	if err != nil {
		return err
	}
	if current != nil && !force {
		return fmt.Errorf("%w: x=%d, y=%d", ErrCellOccupied, x, y)
	}
	b.grid[x][y] = location
	return nil
}

// Remove clears the cell at absolute coordinates x, y.
func (b *Board) Remove(x, y int) error {
	return b.Put(nil, x, y, true)
}

// Placed returns the number of locations on the board, center included.
func (b *Board) Placed() int {
	count := 0
	for _, column := range b.grid {
		for _, cell := range column {
			if cell != nil {
				count++
			}
		}
	}
	return count
}

// Violations checks the board invariant on both axes and returns the first
// witness found along each, longitude first. An empty result means the
// invariant holds.
func (b *Board) Violations() []Invalid {
	return append(b.ViolationsAlong(Longitude), b.ViolationsAlong(Latitude)...)
}

// ViolationsAlong checks the invariant along a single direction and returns
// at most one witness: the first violating pair in enumeration order.
//
// The enumeration order is fixed and observable: the constrained axis index
// pairs (m1, m2) with m1 ascending and m2 >= m1, crossed with a full sweep
// of the free axis, skipping absolute coordinate pairs already checked.
// Changing this order would change which witness gets reported when several
// violations exist.
func (b *Board) ViolationsAlong(direction Direction) []Invalid {
	size := b.opts.Size
	type cellPair struct{ x1, y1, x2, y2 int }
	checked := make(map[cellPair]bool)
	for m1 := 0; m1 < size; m1++ {
		for m2 := m1; m2 < size; m2++ {
			for n1 := 0; n1 < size; n1++ {
				for n2 := 0; n2 < size; n2++ {
					var x1, y1, x2, y2 int
					if direction == Longitude {
						x1, y1, x2, y2 = m1, n1, m2, n2
					} else {
						x1, y1, x2, y2 = n1, m1, n2, m2
					}
					pair := cellPair{x1, y1, x2, y2}
					if checked[pair] {
						continue
					}
					checked[pair] = true
					first, second := b.grid[x1][y1], b.grid[x2][y2]
					if first == nil || second == nil {
						continue
					}
					if first.Before(*second, direction, b.opts.Tolerance) {
						continue
					}
					return []Invalid{{
						Direction: direction,
						X1:        x1, Y1: y1,
						X2: x2, Y2: y2,
						First:  *first,
						Second: *second,
					}}
				}
			}
		}
	}
	return nil
}

// TryPlace attempts to place location at absolute coordinates x, y.
//
// If the placement keeps the invariant it is committed and the empty list is
// returned. Otherwise the location is removed again, leaving the board
// exactly as before the call, and the list of violated directions (without
// duplicates) is returned. Fails with ErrCellOccupied if the target cell is
// taken, before any mutation.
func (b *Board) TryPlace(location Location, x, y int) ([]Direction, error) {
	current, err := b.Get(x, y)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, fmt.Errorf("%w: x=%d, y=%d", ErrCellOccupied, x, y)
	}
	if err := b.Put(&location, x, y, false); err != nil {
		return nil, err
	}
	check := b.Violations()
	if len(check) > 0 {
		if err := b.Remove(x, y); err != nil {
			return nil, err
		}
	}
	var directions []Direction
	seen := make(map[Direction]bool)
	for _, violation := range check {
		if !seen[violation.Direction] {
			seen[violation.Direction] = true
			directions = append(directions, violation.Direction)
		}
	}
	return directions, nil
}

// CanPlace reports whether location fits on some empty cell without breaking
// the invariant. The board is left unchanged.
func (b *Board) CanPlace(location Location) bool {
	for x := 0; x < b.opts.Size; x++ {
		for y := 0; y < b.opts.Size; y++ {
			if b.grid[x][y] != nil {
				continue
			}
			b.grid[x][y] = &location
			ok := len(b.Violations()) == 0
			b.grid[x][y] = nil
			if ok {
				return true
			}
		}
	}
	return false
}

// String lists the occupied cells, one per line.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid %dx%d:", b.opts.Size, b.opts.Size)
	for x := 0; x < b.opts.Size; x++ {
		for y := 0; y < b.opts.Size; y++ {
			if cell := b.grid[x][y]; cell != nil {
				fmt.Fprintf(&sb, "\nx=%d, y=%d: %s", x, y, cell.City)
			}
		}
	}
	return sb.String()
}
