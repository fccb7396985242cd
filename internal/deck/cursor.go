// Package deck keeps a cursor over a fixed list of items.
package deck

// Cursor is an index into a list of length items. When length > 0 the index
// always satisfies 0 <= index < length.
type Cursor struct {
	index  int
	length int
}

func NewCursor(length int) Cursor {
	if length < 0 {
		length = 0
	}
	return Cursor{length: length}
}

func (c Cursor) Index() int  { return c.index }
func (c Cursor) Len() int    { return c.length }
func (c Cursor) Empty() bool { return c.length == 0 }

// Advance moves to the next item, wrapping to 0 after the last.
func (c *Cursor) Advance() int {
	if c.length == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.length
	return c.index
}

// Retreat moves to the previous item, wrapping to the last from 0.
func (c *Cursor) Retreat() int {
	if c.length == 0 {
		return 0
	}
	c.index = (c.index - 1 + c.length) % c.length
	return c.index
}

// Set moves to i, clamped into range.
func (c *Cursor) Set(i int) int {
	if c.length == 0 {
		c.index = 0
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= c.length {
		i = c.length - 1
	}
	c.index = i
	return c.index
}

// Resize changes the length and pulls the index back into range.
func (c *Cursor) Resize(length int) {
	if length < 0 {
		length = 0
	}
	c.length = length
	c.Set(c.index)
}
