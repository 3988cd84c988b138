package curry

import (
	"fmt"
	"math"

	"github.com/vovakirdan/curry-rush/internal/config"
)

// Item is one plate on the belt.
type Item struct {
	Pos  float64 // Left edge in belt units
	Kind Kind
}

// Conveyor is the belt. Items are kept ordered by position ascending: the
// first item is the newest (spawn end), the last one the oldest (nearest
// the eater).
type Conveyor struct {
	items   []Item
	pattern []Kind
	index   int // Last pattern entry served

	size  int     // Fixed number of items
	cell  float64 // Item size
	width float64 // Right edge; items at or beyond it exit
}

// NewConveyor creates a belt for the given geometry and plate pattern.
// The belt is empty until Reset.
func NewConveyor(belt config.BeltConfig, pattern []Kind) *Conveyor {
	if len(pattern) == 0 {
		panic("curry: conveyor needs a non-empty pattern")
	}
	size := belt.TableSize / 2
	return &Conveyor{
		items:   make([]Item, 0, size),
		pattern: pattern,
		size:    size,
		cell:    float64(belt.CellSize),
		width:   belt.Width(),
	}
}

// Reset seeds the belt with evenly spaced empty (air) places from the left
// edge and rewinds the pattern.
func (c *Conveyor) Reset() {
	c.items = c.items[:0]
	for i := range c.size {
		c.items = append(c.items, Item{Pos: float64(i) * c.cell * 2, Kind: KindAir})
	}
	c.index = 0
}

// Advance moves every item by the hazard's speed. Items reaching the right
// edge are replaced by new ones at -cell, each taking the next pattern entry
// and ticking the heat gauge once. Returns the number of exited items.
func (c *Conveyor) Advance(h *Hazard) int {
	speed := h.Speed()
	exited := 0
	for i := range c.items {
		c.items[i].Pos += speed
		if c.items[i].Pos >= c.width {
			exited++
		}
	}
	if exited == 0 {
		return 0
	}

	// Exited items form the tail. Spawn in exit order, the first spawned
	// being the oldest of the new ones.
	spawned := make([]Item, exited)
	for i := range exited {
		c.index = (c.index + 1) % len(c.pattern)
		spawned[exited-1-i] = Item{Pos: -c.cell, Kind: c.pattern[c.index]}
		h.Recycle()
	}
	kept := c.items[:len(c.items)-exited]
	c.items = append(spawned, kept...)
	c.CheckInvariants()
	return exited
}

// HitTest returns the item nearest the eater that lies past eatX, scanning
// from the oldest item. Nil means nothing is in reach.
func (c *Conveyor) HitTest(eatX float64) *Item {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].Pos > eatX {
			return &c.items[i]
		}
	}
	return nil
}

// Freeze snaps every position up to a whole unit.
func (c *Conveyor) Freeze() {
	for i := range c.items {
		c.items[i].Pos = math.Ceil(c.items[i].Pos)
	}
}

// CheckInvariants panics if the belt lost its length or ordering.
func (c *Conveyor) CheckInvariants() {
	if len(c.items) != c.size {
		panic(fmt.Sprintf("curry: conveyor holds %d items, want %d", len(c.items), c.size))
	}
	for i := 1; i < len(c.items); i++ {
		if c.items[i].Pos < c.items[i-1].Pos {
			panic(fmt.Sprintf("curry: conveyor out of order at %d: %.2f < %.2f",
				i, c.items[i].Pos, c.items[i-1].Pos))
		}
	}
}

// Items returns a copy of the belt contents in sequence order.
func (c *Conveyor) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items.
func (c *Conveyor) Len() int {
	return len(c.items)
}

// PatternIndex returns the last pattern entry served.
func (c *Conveyor) PatternIndex() int {
	return c.index
}

// PatternLen returns the length of the plate pattern.
func (c *Conveyor) PatternLen() int {
	return len(c.pattern)
}

// Width returns the belt's right edge.
func (c *Conveyor) Width() float64 {
	return c.width
}
