package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

func sample() []model.Product {
	return []model.Product{
		{ID: "a", Name: "Classic White T-Shirt", Category: "clothing", Price: 799, Rating: 4.5, IsOnSale: true},
		{ID: "b", Name: "Slim Fit Jeans", Category: "clothing", Price: 1499, Rating: 4.2, IsOnSale: true},
		{ID: "c", Name: "Winter Jacket", Category: "clothing", Price: 3599, Rating: 4.8},
		{ID: "d", Name: "Wireless Earbuds", Category: "electronics", Price: 1499, Rating: 4.6, IsOnSale: true},
		{ID: "e", Name: "Ceramic Vase", Description: "Handcrafted vase", Category: "home-decor", Price: 1299, Rating: 4.7},
		{ID: "f", Name: "Plush Teddy Bear", Category: "toys", Price: 2000, Rating: 4.5},
		{ID: "g", Name: "Coffee Mug", Description: "Ceramic mug", Category: "kitchenware", Price: 1000, Rating: 4.4},
	}
}

func TestApply_AllIsIdentity(t *testing.T) {
	items := sample()
	got := Apply(items, Criteria{Category: "all", Sort: SortDefault})
	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_Filters(t *testing.T) {
	lo, hi := 1000, 2000

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"category", Criteria{Category: "clothing"}, []string{"a", "b", "c"}},
		{"inclusive price range", Criteria{MinPrice: &lo, MaxPrice: &hi}, []string{"b", "d", "e", "f", "g"}},
		{"min only", Criteria{MinPrice: &hi}, []string{"c", "f"}},
		{"on sale", Criteria{OnSaleOnly: true}, []string{"a", "b", "d"}},
		{"text in description", Criteria{Query: "CERAMIC"}, []string{"e", "g"}},
		{"text in category", Criteria{Query: "decor"}, []string{"e"}},
		{"combined", Criteria{Category: "clothing", OnSaleOnly: true, MaxPrice: &lo}, []string{"a"}},
		{"no match", Criteria{Category: "garden"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.IDs(Apply(sample(), tt.c))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_PriceRangeExample(t *testing.T) {
	lo, hi := 1000, 2000
	for _, p := range Apply(sample(), Criteria{MinPrice: &lo, MaxPrice: &hi}) {
		if p.Price < 1000 || p.Price > 2000 {
			t.Fatalf("%s price %d outside [1000, 2000]", p.ID, p.Price)
		}
	}
}

func TestApply_SortIsMonotonicAndStable(t *testing.T) {
	low := Apply(sample(), Criteria{Sort: SortPriceLowHigh})
	for i := 1; i < len(low); i++ {
		if low[i-1].Price > low[i].Price {
			t.Fatalf("price-low-high not non-decreasing at %d", i)
		}
	}
	// b and d share a price; input order must be kept.
	if diff := cmp.Diff([]string{"a", "g", "e", "b", "d", "f", "c"}, model.IDs(low)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}

	high := Apply(sample(), Criteria{Sort: SortPriceHighLow})
	for i := 1; i < len(high); i++ {
		if high[i-1].Price < high[i].Price {
			t.Fatalf("price-high-low not non-increasing at %d", i)
		}
	}

	rated := Apply(sample(), Criteria{Sort: SortRating})
	for i := 1; i < len(rated); i++ {
		if rated[i-1].Rating < rated[i].Rating {
			t.Fatalf("rating not non-increasing at %d", i)
		}
	}
	if diff := cmp.Diff([]string{"c", "e", "d", "a", "f", "g", "b"}, model.IDs(rated)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}

func TestApply_Idempotent(t *testing.T) {
	lo := 900
	c := Criteria{Category: "all", MinPrice: &lo, OnSaleOnly: true, Sort: SortRating}
	once := Apply(sample(), c)
	twice := Apply(once, c)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("not idempotent (-once +twice):\n%s", diff)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sample()
	_ = Apply(items, Criteria{Sort: SortPriceHighLow})
	if diff := cmp.Diff(sample(), items); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"":               SortDefault,
		"relevance":      SortDefault,
		"price-low":      SortPriceLowHigh,
		"price-low-high": SortPriceLowHigh,
		"Price-High":     SortPriceHighLow,
		"price-high-low": SortPriceHighLow,
		"rating":         SortRating,
		"newest":         SortDefault,
	}
	for in, want := range tests {
		if got := ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPriceBounds(t *testing.T) {
	lo, hi, ok := PriceBounds(sample())
	if !ok || lo != 799 || hi != 3599 {
		t.Fatalf("PriceBounds = %d, %d, %v", lo, hi, ok)
	}
	if _, _, ok := PriceBounds(nil); ok {
		t.Fatalf("empty input should report !ok")
	}
}
