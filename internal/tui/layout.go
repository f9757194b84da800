package tui

import (
	"github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/tui/components"
)

// Fixed rows around the columns
const (
	headerRows = 1
	statusRows = 1
)

// cardBox is where a card and its action buttons were drawn
type cardBox struct {
	id      string
	column  int
	row     int // index within the column
	rect    board.Rect
	buttons []board.Rect
}

// columnBox is where a column and its visible cards were drawn
type columnBox struct {
	rect      board.Rect
	cardWidth int
	first     int // index of the first visible card
	cards     []cardBox
	moreAbove bool
	moreBelow bool
}

// boardLayout is the geometry shared by rendering and mouse hit-testing
type boardLayout struct {
	columns []columnBox
}

// computeLayout places the columns of b side by side in a width x height
// terminal. scroll returns the first visible card of each column.
func computeLayout(b board.Board, width, height int, scroll func(col int) int) boardLayout {
	n := len(b.Columns)
	if n == 0 {
		return boardLayout{}
	}

	colW := max(width/n, 6)
	colH := max(height-headerRows-statusRows, 5)

	lay := boardLayout{columns: make([]columnBox, n)}
	for i, col := range b.Columns {
		w := colW
		if i == n-1 {
			w = max(width-colW*(n-1), 6)
		}
		x := i * colW

		box := columnBox{
			rect:      board.Rect{X: x, Y: headerRows, Width: w, Height: colH},
			cardWidth: max(w-2, 4),
		}

		top := headerRows + 1 + components.ColumnHeaderRows
		// bottom border and the "more below" row are not available to cards
		limit := headerRows + colH - 2

		box.first = min(max(scroll(i), 0), max(len(col.Cards)-1, 0))
		y := top
		for r := box.first; r < len(col.Cards); r++ {
			card := col.Cards[r]
			h := components.CardHeight(card, box.cardWidth)
			if y+h > limit && r > box.first {
				break
			}

			cb := cardBox{
				id:     card.ID,
				column: i,
				row:    r,
				rect:   board.Rect{X: x + 1, Y: y, Width: box.cardWidth, Height: h},
			}
			for a := range card.Actions {
				cb.buttons = append(cb.buttons, board.Rect{
					X:      x + 2,
					Y:      y + components.ButtonRow(card, box.cardWidth, a),
					Width:  box.cardWidth - 2,
					Height: 1,
				})
			}
			box.cards = append(box.cards, cb)
			y += h
		}

		box.moreAbove = box.first > 0
		box.moreBelow = box.first+len(box.cards) < len(col.Cards)
		lay.columns[i] = box
	}
	return lay
}

// columnAtX returns the column spanning x, or -1
func (l boardLayout) columnAtX(x int) int {
	for i, c := range l.columns {
		if x >= c.rect.X && x < c.rect.X+c.rect.Width {
			return i
		}
	}
	return -1
}

// cardAt returns the card under (x, y)
func (l boardLayout) cardAt(x, y int) (cardBox, bool) {
	col := l.columnAtX(x)
	if col < 0 {
		return cardBox{}, false
	}
	for _, cb := range l.columns[col].cards {
		if cb.rect.Contains(x, y) {
			return cb, true
		}
	}
	return cardBox{}, false
}

// buttonAt returns the card and action index of the button under (x, y)
func (l boardLayout) buttonAt(x, y int) (cardBox, int, bool) {
	cb, ok := l.cardAt(x, y)
	if !ok {
		return cardBox{}, 0, false
	}
	for i, r := range cb.buttons {
		if r.Contains(x, y) {
			return cb, i, true
		}
	}
	return cardBox{}, 0, false
}

// cardRects lists the drawn rectangles of a column's visible cards
func (l boardLayout) cardRects(col int) []board.Rect {
	if col < 0 || col >= len(l.columns) {
		return nil
	}
	rects := make([]board.Rect, len(l.columns[col].cards))
	for i, cb := range l.columns[col].cards {
		rects[i] = cb.rect
	}
	return rects
}

// visible reports whether card row of column col was drawn
func (l boardLayout) visible(col, row int) bool {
	if col < 0 || col >= len(l.columns) {
		return false
	}
	c := l.columns[col]
	return row >= c.first && row < c.first+len(c.cards)
}
