package search

import (
	"context"
	"strings"
	"time"

	"github.com/seasonal-storefront/server/internal/catalog/model"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

// Searcher is the catalog operation suggestions are drawn from.
type Searcher interface {
	SearchProducts(ctx context.Context, query string) []model.Product
}

// Suggester serves the search bar dropdown.
type Suggester struct {
	searcher  Searcher
	debouncer *Debouncer
	limit     int
	minLen    int
}

func NewSuggester(searcher Searcher, cfg model.SearchConfig) *Suggester {
	limit := cfg.SuggestLimit
	if limit <= 0 {
		limit = 5
	}
	minLen := cfg.MinQueryLen
	if minLen <= 0 {
		minLen = 2
	}
	return &Suggester{
		searcher:  searcher,
		debouncer: NewDebouncer(cfg.Debounce),
		limit:     limit,
		minLen:    minLen,
	}
}

// Suggest returns up to the suggestion limit of products for query. Short
// queries yield nothing. A newer call from the same client makes this one
// return errx.ErrSuperseded.
func (s *Suggester) Suggest(ctx context.Context, clientID, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < s.minLen {
		return []model.Product{}, nil
	}

	var out []model.Product
	start := time.Now()
	err := s.debouncer.Do(ctx, clientID, func(ctx context.Context) error {
		products := s.searcher.SearchProducts(ctx, query)
		if len(products) > s.limit {
			products = products[:s.limit]
		}
		out = products
		return nil
	})
	if err != nil {
		logx.Debug().Err(err).Str("client", clientID).Str("query", query).Msg("suggestion dropped")
		return nil, err
	}
	logx.Debug().Str("query", query).Int("count", len(out)).Dur("took", time.Since(start)).Msg("suggestions served")
	return out, nil
}
