package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/seasonal-storefront/server/internal/catalog/model"
	errx "github.com/seasonal-storefront/server/internal/core/error"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes bounds how much of a response body is decoded.
const maxBodyBytes = 4 << 20

// HTTPSource reads products from the product API, e.g. http://localhost:5000/api.
type HTTPSource struct {
	HTTP    *http.Client
	BaseURL string
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSource{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *HTTPSource) All(ctx context.Context, limit, offset int) ([]model.RawProduct, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return s.list(ctx, "/products", q)
}

func (s *HTTPSource) ByID(ctx context.Context, id string) (*model.RawProduct, error) {
	var env model.ProductEnvelope
	if err := s.get(ctx, "/products/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	if env.Product == nil {
		return nil, errx.WrapMalformed(fmt.Errorf("product %q: empty envelope", id))
	}
	return env.Product, nil
}

func (s *HTTPSource) ByCategory(ctx context.Context, category string, limit int) ([]model.RawProduct, error) {
	return s.list(ctx, "/products/category/"+url.PathEscape(category), limitQuery(limit))
}

func (s *HTTPSource) OnSale(ctx context.Context, limit int) ([]model.RawProduct, error) {
	return s.list(ctx, "/products/sale", limitQuery(limit))
}

func (s *HTTPSource) Search(ctx context.Context, query string, limit int) ([]model.RawProduct, error) {
	q := limitQuery(limit)
	q.Set("q", query)
	return s.list(ctx, "/products/search", q)
}

func (s *HTTPSource) list(ctx context.Context, path string, q url.Values) ([]model.RawProduct, error) {
	var env model.ProductsEnvelope
	if err := s.get(ctx, path, q, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (s *HTTPSource) get(ctx context.Context, path string, q url.Values, out any) error {
	u := s.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errx.WrapDataSource(err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.HTTP.Do(req)
	if err != nil {
		return errx.WrapDataSource(err)
	}
	defer res.Body.Close()

	body := io.LimitReader(res.Body, maxBodyBytes)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var msg model.MessageEnvelope
		_ = json.NewDecoder(body).Decode(&msg)
		return errx.FromStatus(res.StatusCode, msg.Message)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return errx.WrapDataSource(err)
		}
		return errx.WrapMalformed(fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
