package board

// Rect is a cell-space rectangle on the terminal
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// InsertionIndex returns the index of the first card whose vertical midpoint
// lies below pointerY, or len(cards) to append. cards must exclude the card
// being dragged and be in display order.
func InsertionIndex(cards []Rect, pointerY int) int {
	for i, r := range cards {
		// pointerY < r.Y + r.Height/2 without losing the half cell
		if 2*pointerY < 2*r.Y+r.Height {
			return i
		}
	}
	return len(cards)
}
