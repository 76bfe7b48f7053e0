package ledgrid

import "fmt"

// Group is an ordered scene-graph node holding TileGrids and other Groups.
// Children composite depth-first in append order, so later siblings paint
// over earlier ones at overlapping pixels.
//
// The scene graph is a tree, not a DAG: every child records its parent,
// and attaching an item that already has one fails with
// ErrDuplicateChild. Detach first to move an item.
type Group struct {
	// X, Y is the group's offset within its parent, in pixels.
	X, Y int

	// Scale is an integer magnification applied to the whole subtree.
	// Values below 1 are treated as 1.
	Scale int

	// Hidden skips the group and its entire subtree during composition.
	Hidden bool

	items []Displayable
	owner *Group
}

// NewGroup creates an empty group at the origin with scale 1.
func NewGroup() *Group {
	return &Group{Scale: 1}
}

// Append adds item at the end of the child list.
func (g *Group) Append(item Displayable) error {
	if item == nil {
		panic("ledgrid: cannot append nil item")
	}
	if item.parent() != nil {
		return fmt.Errorf("append: %w", ErrDuplicateChild)
	}
	item.setParent(g)
	g.items = append(g.items, item)
	return nil
}

// Insert adds item at the given index, shifting later children up.
func (g *Group) Insert(index int, item Displayable) error {
	if item == nil {
		panic("ledgrid: cannot insert nil item")
	}
	if index < 0 || index > len(g.items) {
		return fmt.Errorf("insert at %d: %w", index, ErrOutOfRange)
	}
	if item.parent() != nil {
		return fmt.Errorf("insert: %w", ErrDuplicateChild)
	}
	item.setParent(g)
	g.items = append(g.items, nil)
	copy(g.items[index+1:], g.items[index:])
	g.items[index] = item
	return nil
}

// Remove detaches item from this group.
func (g *Group) Remove(item Displayable) error {
	for i, it := range g.items {
		if it == item {
			g.removeAt(i)
			return nil
		}
	}
	return fmt.Errorf("remove: item not in group: %w", ErrOutOfRange)
}

// Pop removes and returns the child at index. A negative index counts from
// the end, so Pop(-1) removes the last child.
func (g *Group) Pop(index int) (Displayable, error) {
	if index < 0 {
		index += len(g.items)
	}
	if index < 0 || index >= len(g.items) {
		return nil, fmt.Errorf("pop at %d: %w", index, ErrOutOfRange)
	}
	item := g.items[index]
	g.removeAt(index)
	return item, nil
}

// Index returns the position of item in the child list, or -1.
func (g *Group) Index(item Displayable) int {
	for i, it := range g.items {
		if it == item {
			return i
		}
	}
	return -1
}

// At returns the child at index. Panics on an out-of-range index, like a
// slice access.
func (g *Group) At(index int) Displayable {
	return g.items[index]
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.items)
}

// removeAt drops the child at i and clears its parent link.
// Uses copy+nil to avoid retaining a dangling reference in the backing
// array.
func (g *Group) removeAt(i int) {
	g.items[i].setParent(nil)
	copy(g.items[i:], g.items[i+1:])
	g.items[len(g.items)-1] = nil
	g.items = g.items[:len(g.items)-1]
}

// --- Displayable ---

func (g *Group) parent() *Group     { return g.owner }
func (g *Group) setParent(p *Group) { g.owner = p }

// compositeInto walks the subtree depth-first in append order. The group's
// own offset is scaled by the parent's accumulated scale, then its scale
// multiplies into the accumulated factor for the children.
func (g *Group) compositeInto(canvas *PixelBuffer, offX, offY, scale int) {
	if g.Hidden {
		return
	}

	groupX := offX + g.X*scale
	groupY := offY + g.Y*scale
	groupScale := scale * max(1, g.Scale)

	for _, item := range g.items {
		item.compositeInto(canvas, groupX, groupY, groupScale)
	}
}
