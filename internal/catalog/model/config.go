package model

import "time"

// ================ Config ================

// CatalogConfig is bound under the CATALOG_ prefix.
type CatalogConfig struct {
	Source           string        `split_words:"true" default:"mock"`
	BaseURL          string        `split_words:"true" default:"http://localhost:5000/api"`
	Timeout          time.Duration `split_words:"true" default:"5s"`
	Seed             uint64        `split_words:"true" default:"0"`
	MockLatency      time.Duration `split_words:"true" default:"0s"`
	ServeMockBackend bool          `split_words:"true" default:"false"`
}

// SearchConfig is bound under the SEARCH_ prefix.
type SearchConfig struct {
	Debounce     time.Duration `split_words:"true" default:"300ms"`
	SuggestLimit int           `split_words:"true" default:"5"`
	MinQueryLen  int           `split_words:"true" default:"2"`
	RecentLimit  int           `split_words:"true" default:"5"`
	RecentTTL    time.Duration `split_words:"true" default:"720h"`
}

const (
	SourceMock = "mock"
	SourceHTTP = "http"
)
