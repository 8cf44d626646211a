package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

type fakeSearcher struct {
	calls atomic.Int32
	n     int
}

func (f *fakeSearcher) SearchProducts(_ context.Context, query string) []model.Product {
	f.calls.Add(1)
	out := make([]model.Product, 0, f.n)
	for i := 0; i < f.n; i++ {
		out = append(out, model.Product{ID: fmt.Sprintf("%s-%d", query, i), Name: query})
	}
	return out
}

func TestSuggester_LimitsResults(t *testing.T) {
	f := &fakeSearcher{n: 8}
	s := NewSuggester(f, model.SearchConfig{SuggestLimit: 5, MinQueryLen: 2})

	got, err := s.Suggest(context.Background(), "client", "  mug ")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 5 || got[0].ID != "mug-0" {
		t.Fatalf("got %v", model.IDs(got))
	}
}

func TestSuggester_IgnoresShortQueries(t *testing.T) {
	f := &fakeSearcher{n: 8}
	s := NewSuggester(f, model.SearchConfig{})

	for _, q := range []string{"", " ", "m"} {
		got, err := s.Suggest(context.Background(), "client", q)
		if err != nil || len(got) != 0 {
			t.Fatalf("Suggest(%q) = %v, %v", q, got, err)
		}
	}
	if f.calls.Load() != 0 {
		t.Fatalf("searcher called %d times for short queries", f.calls.Load())
	}
}
