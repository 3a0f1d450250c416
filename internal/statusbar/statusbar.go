package statusbar

import (
	"strings"

	"github.com/yomu-dev/yomu/internal/term"
	"github.com/yomu-dev/yomu/internal/textutil"
)

// Item is one named entry on the status bar. The value is always a single
// line; newlines are replaced at construction.
type Item struct {
	name  string
	value string
}

func NewItem(name, value string) Item {
	// Only one row is available, so embedded newlines become spaces.
	value = strings.ReplaceAll(value, "\n", " ")
	return Item{name: name, value: value}
}

func (it Item) Name() string  { return it.name }
func (it Item) Value() string { return it.value }

// StatusBar composes named display items into a single reverse-video row.
// Items keep their insertion order; adding an item whose name already
// exists replaces the value in place.
type StatusBar struct {
	items []Item

	Width   int
	Height  int
	OriginX int
	OriginY int
}

func New(width, height, originX, originY int) *StatusBar {
	return &StatusBar{
		Width:   width,
		Height:  height,
		OriginX: originX,
		OriginY: originY,
	}
}

// AddItem inserts item, or overwrites the existing item of the same name
// without moving it.
func (sb *StatusBar) AddItem(item Item) {
	for i := range sb.items {
		if sb.items[i].name == item.name {
			sb.items[i] = item
			return
		}
	}
	sb.items = append(sb.items, item)
}

// Len reports the number of items.
func (sb *StatusBar) Len() int {
	return len(sb.items)
}

// Item returns the item at position i in insertion order.
func (sb *StatusBar) Item(i int) Item {
	return sb.items[i]
}

// Print draws the bar: the whole row is filled with the inverted background
// first, then the item values follow in insertion order separated by single
// spaces, with no trailing separator. Columns past the text stay inverted.
func (sb *StatusBar) Print(rc *term.RenderContext) {
	rc.MoveTo(0, sb.OriginY)
	rc.Reverse()
	rc.Spaces(sb.Width)
	rc.MoveTo(0, sb.OriginY)

	values := make([]string, 0, len(sb.items))
	for _, item := range sb.items {
		values = append(values, item.value)
	}
	rc.Print(textutil.TruncateToWidth(strings.Join(values, " "), sb.Width))

	rc.ResetStyle()
}
