package errx

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps Redis errors to the unified AppError type with appropriate status codes.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return &AppError{Err: err, Kind: ErrNotFound, Status: http.StatusNotFound, Message: RedisNotFoundMessage}
	}

	return New(err, http.StatusBadGateway, RedisErrorMessage)
}
