package product

// AdjustmentKind enumerates the two directions in which inventory moves.
type AdjustmentKind string

const (
	// Fulfill moves units from stock to sold.
	Fulfill AdjustmentKind = "fulfill"
	// Restock moves units from sold back to stock.
	Restock AdjustmentKind = "restock"
)

// Adjustment is a single inventory movement for one product.
type Adjustment struct {
	ProductID string
	Kind      AdjustmentKind
	Quantity  int
}

// Counters holds the paired stock and sold counters of a product.
type Counters struct {
	StockQuantity int
	SoldCount     int
}

// Apply returns the counters after adj. The decremented counter is floored at
// zero while the incremented one grows by the full quantity, so both counters
// stay non-negative. The SQL in the repository mirrors this exactly.
func (c Counters) Apply(adj Adjustment) Counters {
	switch adj.Kind {
	case Fulfill:
		return Counters{
			StockQuantity: floorAtZero(c.StockQuantity - adj.Quantity),
			SoldCount:     c.SoldCount + adj.Quantity,
		}
	case Restock:
		return Counters{
			StockQuantity: c.StockQuantity + adj.Quantity,
			SoldCount:     floorAtZero(c.SoldCount - adj.Quantity),
		}
	default:
		return c
	}
}

// Merge collapses adjustments of the same kind for the same product into one,
// preserving first-seen order. Orders may list a product on several lines
// (different sizes or colors); merging keeps the ledger at one statement per
// product.
func Merge(adjustments []Adjustment) []Adjustment {
	type key struct {
		id   string
		kind AdjustmentKind
	}
	idx := make(map[key]int, len(adjustments))
	out := make([]Adjustment, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.Quantity <= 0 {
			continue
		}
		k := key{id: adj.ProductID, kind: adj.Kind}
		if i, ok := idx[k]; ok {
			out[i].Quantity += adj.Quantity
			continue
		}
		idx[k] = len(out)
		out = append(out, adj)
	}
	return out
}

func floorAtZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
