package deck

import (
	"fmt"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

// Deck pairs a list of items with a cursor. The list length is fixed at
// construction except through Append and Remove.
type Deck[T models.Item] struct {
	items  []T
	cursor Cursor
}

func New[T models.Item](items []T) *Deck[T] {
	own := make([]T, len(items))
	copy(own, items)
	return &Deck[T]{items: own, cursor: NewCursor(len(own))}
}

func (d *Deck[T]) Len() int       { return len(d.items) }
func (d *Deck[T]) Empty() bool    { return len(d.items) == 0 }
func (d *Deck[T]) Index() int     { return d.cursor.Index() }
func (d *Deck[T]) Cursor() Cursor { return d.cursor }

// Items returns a copy of the list.
func (d *Deck[T]) Items() []T {
	out := make([]T, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Deck[T]) Current() (T, bool) {
	var zero T
	if d.Empty() {
		return zero, false
	}
	return d.items[d.cursor.Index()], true
}

// Advance moves the cursor cyclically and returns the new current item.
func (d *Deck[T]) Advance() (T, bool) {
	d.cursor.Advance()
	return d.Current()
}

func (d *Deck[T]) Retreat() (T, bool) {
	d.cursor.Retreat()
	return d.Current()
}

func (d *Deck[T]) Select(i int) (T, bool) {
	d.cursor.Set(i)
	return d.Current()
}

// IndexOf returns the position of the item with id, or -1.
func (d *Deck[T]) IndexOf(id string) int {
	for i, it := range d.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

// Replace swaps the item sharing v's ID in place.
func (d *Deck[T]) Replace(v T) bool {
	i := d.IndexOf(v.ItemID())
	if i < 0 {
		return false
	}
	d.items[i] = v
	return true
}

func (d *Deck[T]) Append(v T) {
	d.items = append(d.items, v)
	d.cursor.Resize(len(d.items))
}

// Remove drops the item with id. The cursor stays on the same item when
// possible, otherwise on its successor.
func (d *Deck[T]) Remove(id string) bool {
	i := d.IndexOf(id)
	if i < 0 {
		return false
	}
	idx := d.cursor.Index()
	d.items = append(d.items[:i], d.items[i+1:]...)
	if i < idx {
		idx--
	}
	d.cursor.Resize(len(d.items))
	d.cursor.Set(idx)
	return true
}

// Position renders the cursor as "i of N".
func (d *Deck[T]) Position() string {
	if d.Empty() {
		return "0 of 0"
	}
	return fmt.Sprintf("%d of %d", d.cursor.Index()+1, len(d.items))
}
