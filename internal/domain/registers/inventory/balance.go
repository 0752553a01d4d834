package inventory

import (
	"sort"

	"tcnursery/internal/core/types"
)

// Balance is the stock position of one item.
type Balance struct {
	ItemName string         `json:"itemName"`
	Category string         `json:"category"`
	Unit     string         `json:"unit"`
	In       types.Quantity `json:"in"`
	Out      types.Quantity `json:"out"`
	Quantity types.Quantity `json:"quantity"`
}

// Balances sums movements per item name, sorted by category then item.
func Balances(movements []*Movement) []Balance {
	byItem := make(map[string]*Balance)
	for _, m := range movements {
		b, ok := byItem[m.ItemName]
		if !ok {
			b = &Balance{
				ItemName: m.ItemName,
				Category: m.Category,
				Unit:     m.Unit,
				In:       types.Zero(),
				Out:      types.Zero(),
			}
			byItem[m.ItemName] = b
		}
		if m.Direction == DirectionOut {
			b.Out = b.Out.Add(m.Quantity)
		} else {
			b.In = b.In.Add(m.Quantity)
		}
	}

	out := make([]Balance, 0, len(byItem))
	for _, b := range byItem {
		b.Quantity = b.In.Sub(b.Out)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out
}

// OnHand returns the balance of itemName over movements.
func OnHand(movements []*Movement, itemName string) types.Quantity {
	total := types.Zero()
	for _, m := range movements {
		if m.ItemName == itemName {
			total = total.Add(m.Signed())
		}
	}
	return total
}

// totals returns the received and issued quantities of itemName.
func totals(movements []*Movement, itemName string) (in, out types.Quantity) {
	in, out = types.Zero(), types.Zero()
	for _, m := range movements {
		if m.ItemName != itemName {
			continue
		}
		if m.Direction == DirectionOut {
			out = out.Add(m.Quantity)
		} else {
			in = in.Add(m.Quantity)
		}
	}
	return in, out
}
