package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestStatusOfAndKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   error
		status int
	}{
		{"data source", WrapDataSource(errors.New("dial tcp: refused")), ErrDataSourceUnavailable, http.StatusBadGateway},
		{"malformed", WrapMalformed(errors.New("bad json")), ErrMalformedResponse, http.StatusBadGateway},
		{"not found status", FromStatus(http.StatusNotFound, "Product not found"), ErrNotFound, http.StatusNotFound},
		{"bad request status", FromStatus(http.StatusBadRequest, ""), ErrBadRequest, http.StatusBadRequest},
		{"server status", FromStatus(http.StatusServiceUnavailable, ""), ErrDataSourceUnavailable, http.StatusBadGateway},
		{"superseded", fmt.Errorf("suggest: %w", ErrSuperseded), ErrSuperseded, http.StatusConflict},
		{"redis nil", WrapRedis(redis.Nil), ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("%v is not %v", tt.err, tt.kind)
			}
			if got := StatusOf(tt.err); got != tt.status {
				t.Fatalf("StatusOf = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestAppErrorUnwrapAndMessages(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("fetch: %w", WrapDataSource(cause))

	if !errors.Is(err, cause) {
		t.Fatalf("cause lost")
	}
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Status != http.StatusBadGateway {
		t.Fatalf("As = %+v", appErr)
	}
	if got := PublicMessage(err); got != DataSourceErrorMessage {
		t.Fatalf("PublicMessage = %q", got)
	}
	if got := PublicMessage(errors.New("secret detail")); got != SystemErrorMessage {
		t.Fatalf("PublicMessage leaked %q", got)
	}
	if got := StatusOf(errors.New("x")); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf plain error = %d", got)
	}
	if WrapDataSource(nil) != nil || WrapMalformed(nil) != nil || WrapRedis(nil) != nil {
		t.Fatalf("wrapping nil should yield nil")
	}
}
