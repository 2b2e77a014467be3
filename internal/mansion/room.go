package mansion

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"example.com/detective/internal/config"
)

var (
	// ErrNoRoom is returned when there is no room in the requested direction.
	ErrNoRoom = errors.New("no room that way")
	// ErrInvalidLayout is returned when a layout cannot form a single tree.
	ErrInvalidLayout = errors.New("invalid mansion layout")
)

// Direction selects a child room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection reads a direction from the first letter of s, in either case.
func ParseDirection(s string) (Direction, bool) {
	if s == "" {
		return 0, false
	}
	switch s[0] {
	case 'l', 'L':
		return Left, true
	case 'r', 'R':
		return Right, true
	}
	return 0, false
}

// Room is one location in the mansion. A room exclusively owns its children.
type Room struct {
	Name  string
	Clue  string
	left  *Room
	right *Room
}

// Left returns the left child, or nil.
func (r *Room) Left() *Room { return r.left }

// Right returns the right child, or nil.
func (r *Room) Right() *Room { return r.right }

// HasClue reports whether a clue is lying in the room.
func (r *Room) HasClue() bool { return r.Clue != "" }

// IsLeaf reports whether the room has no way forward.
func (r *Room) IsLeaf() bool { return r.left == nil && r.right == nil }

// Next returns the child in direction d without modifying the tree.
func (r *Room) Next(d Direction) (*Room, error) {
	var next *Room
	switch d {
	case Left:
		next = r.left
	case Right:
		next = r.right
	}
	if next == nil {
		return nil, ErrNoRoom
	}
	return next, nil
}

// Navigate is Next for callers holding a possibly nil cursor.
func Navigate(current *Room, d Direction) (*Room, error) {
	if current == nil {
		return nil, ErrNoRoom
	}
	return current.Next(d)
}

// Walk yields the subtree rooted at r in pre-order.
func (r *Room) Walk() iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		r.walk(yield)
	}
}

func (r *Room) walk(yield func(*Room) bool) bool {
	if r == nil {
		return true
	}
	return yield(r) && r.left.walk(yield) && r.right.walk(yield)
}

// Build turns a layout into a room tree. The first spec is the root. It
// also returns every room in declaration order, which is the order clue
// distribution visits them.
func Build(layout []config.RoomSpec) (*Room, []*Room, error) {
	if len(layout) == 0 {
		return nil, nil, fmt.Errorf("%w: no rooms", ErrInvalidLayout)
	}

	byName := make(map[string]*Room, len(layout))
	rooms := make([]*Room, 0, len(layout))
	for _, spec := range layout {
		if spec.Name == "" {
			return nil, nil, fmt.Errorf("%w: room without a name", ErrInvalidLayout)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, nil, fmt.Errorf("%w: room %q declared twice", ErrInvalidLayout, spec.Name)
		}
		room := &Room{Name: spec.Name, Clue: spec.Clue}
		byName[spec.Name] = room
		rooms = append(rooms, room)
	}

	root := rooms[0]
	owned := make(map[*Room]string, len(rooms))
	link := func(parent *Room, childName string) (*Room, error) {
		if childName == "" {
			return nil, nil
		}
		child, ok := byName[childName]
		if !ok {
			return nil, fmt.Errorf("%w: %q leads to unknown room %q", ErrInvalidLayout, parent.Name, childName)
		}
		if child == root {
			return nil, fmt.Errorf("%w: %q leads back to the entrance", ErrInvalidLayout, parent.Name)
		}
		if owner, taken := owned[child]; taken {
			return nil, fmt.Errorf("%w: %q is reachable from both %q and %q", ErrInvalidLayout, childName, owner, parent.Name)
		}
		owned[child] = parent.Name
		return child, nil
	}

	for i, spec := range layout {
		var err error
		if rooms[i].left, err = link(rooms[i], spec.Left); err != nil {
			return nil, nil, err
		}
		if rooms[i].right, err = link(rooms[i], spec.Right); err != nil {
			return nil, nil, err
		}
	}

	// Single ownership plus a root nobody owns still allows detached cycles.
	reached := 0
	for range root.Walk() {
		reached++
	}
	if reached != len(rooms) {
		return nil, nil, fmt.Errorf("%w: %d of %d rooms unreachable from %q", ErrInvalidLayout, len(rooms)-reached, len(rooms), root.Name)
	}
	return root, rooms, nil
}

// DistributeClues gives each room, with probability percent, a clue drawn
// uniformly from clues. Rooms that miss the roll are left without a clue.
func DistributeClues(rooms []*Room, clues []string, percent int, rng *rand.Rand) {
	for _, room := range rooms {
		if len(clues) > 0 && rng.Intn(100) < percent {
			room.Clue = clues[rng.Intn(len(clues))]
		} else {
			room.Clue = ""
		}
	}
}
