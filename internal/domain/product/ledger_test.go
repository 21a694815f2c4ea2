package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters_Apply(t *testing.T) {
	tests := []struct {
		name  string
		start Counters
		adj   Adjustment
		want  Counters
	}{
		{
			name:  "fulfill moves stock to sold",
			start: Counters{StockQuantity: 10, SoldCount: 3},
			adj:   Adjustment{ProductID: "p1", Kind: Fulfill, Quantity: 4},
			want:  Counters{StockQuantity: 6, SoldCount: 7},
		},
		{
			name:  "fulfill floors stock at zero",
			start: Counters{StockQuantity: 1, SoldCount: 0},
			adj:   Adjustment{ProductID: "p1", Kind: Fulfill, Quantity: 3},
			want:  Counters{StockQuantity: 0, SoldCount: 3},
		},
		{
			name:  "restock quantity 2 on 5/10",
			start: Counters{StockQuantity: 5, SoldCount: 10},
			adj:   Adjustment{ProductID: "p1", Kind: Restock, Quantity: 2},
			want:  Counters{StockQuantity: 7, SoldCount: 8},
		},
		{
			name:  "restock floors sold at zero",
			start: Counters{StockQuantity: 0, SoldCount: 1},
			adj:   Adjustment{ProductID: "p1", Kind: Restock, Quantity: 5},
			want:  Counters{StockQuantity: 5, SoldCount: 0},
		},
		{
			name:  "unknown kind is ignored",
			start: Counters{StockQuantity: 2, SoldCount: 2},
			adj:   Adjustment{ProductID: "p1", Kind: AdjustmentKind("bogus"), Quantity: 5},
			want:  Counters{StockQuantity: 2, SoldCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.Apply(tt.adj))
		})
	}
}

func TestCounters_FulfillThenRestockNetsToZero(t *testing.T) {
	start := Counters{StockQuantity: 10, SoldCount: 4}

	after := start.
		Apply(Adjustment{Kind: Fulfill, Quantity: 3}).
		Apply(Adjustment{Kind: Restock, Quantity: 3})

	assert.Equal(t, start, after)
}

func TestMerge(t *testing.T) {
	got := Merge([]Adjustment{
		{ProductID: "p1", Kind: Fulfill, Quantity: 1},
		{ProductID: "p2", Kind: Fulfill, Quantity: 2},
		{ProductID: "p1", Kind: Fulfill, Quantity: 3},
		{ProductID: "p3", Kind: Fulfill, Quantity: 0},
	})

	assert.Equal(t, []Adjustment{
		{ProductID: "p1", Kind: Fulfill, Quantity: 4},
		{ProductID: "p2", Kind: Fulfill, Quantity: 2},
	}, got)
}
