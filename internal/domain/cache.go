package domain

import (
	"context"
	"fmt"
)

// CacheInvalidator drops cached representations after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

func RoomCacheKey(id int) string {
	return fmt.Sprintf("room_data_%d", id)
}

func MovieCacheKey(id int) string {
	return fmt.Sprintf("movie_data_%d", id)
}

func ShowtimeCacheKey(id int) string {
	return fmt.Sprintf("showtime_data_%d", id)
}
