package board

import "github.com/thenoetrevino/tareas/internal/models"

// Order remembers in-column drag reordering for the current session only.
// It is never persisted; the store's collection order stays authoritative.
type Order struct {
	ids map[models.Stage][]string
}

// NewOrder returns an empty session order
func NewOrder() *Order {
	return &Order{ids: make(map[models.Stage][]string)}
}

// Move places the card with id at index among the column's other cards.
// An index past the end appends. Unknown ids are ignored.
func (o *Order) Move(col Column, id string, index int) {
	if col.IndexOf(id) < 0 {
		return
	}

	rest := make([]string, 0, len(col.Cards))
	for _, c := range col.Cards {
		if c.ID != id {
			rest = append(rest, c.ID)
		}
	}

	if index < 0 {
		index = 0
	}
	if index > len(rest) {
		index = len(rest)
	}

	ordered := make([]string, 0, len(col.Cards))
	ordered = append(ordered, rest[:index]...)
	ordered = append(ordered, id)
	ordered = append(ordered, rest[index:]...)
	o.ids[col.Stage] = ordered
}

// Apply sorts each column by the remembered order. Cards the order has not
// seen keep their collection order after the remembered ones.
func (o *Order) Apply(b Board) Board {
	out := Board{Columns: make([]Column, len(b.Columns))}
	for i, col := range b.Columns {
		out.Columns[i] = col
		ids, ok := o.ids[col.Stage]
		if !ok {
			continue
		}

		rank := make(map[string]int, len(ids))
		for pos, id := range ids {
			rank[id] = pos
		}

		known := make([]Card, len(ids))
		filled := make([]bool, len(ids))
		var unknown []Card
		for _, card := range col.Cards {
			if pos, seen := rank[card.ID]; seen {
				known[pos] = card
				filled[pos] = true
			} else {
				unknown = append(unknown, card)
			}
		}

		cards := make([]Card, 0, len(col.Cards))
		for pos := range known {
			if filled[pos] {
				cards = append(cards, known[pos])
			}
		}
		out.Columns[i].Cards = append(cards, unknown...)
	}
	return out
}

// Reset forgets every remembered order
func (o *Order) Reset() {
	o.ids = make(map[models.Stage][]string)
}
