package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/pkg/helpers"
)

func userViewKey(id int64) string {
	return "user:view:" + strconv.FormatInt(id, 10)
}

// UserViewCache stores rendered user views as JSON with a fixed TTL.
type UserViewCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

func NewUserViewCache(rdb goredis.Cmdable, ttl time.Duration) *UserViewCache {
	return &UserViewCache{rdb: rdb, ttl: ttl}
}

func (c *UserViewCache) Get(ctx context.Context, id int64) (*application.UserResponse, bool, error) {
	var view application.UserResponse
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, userViewKey(id), &view)
	if err != nil || !ok {
		return nil, false, err
	}
	return &view, true, nil
}

func (c *UserViewCache) Set(ctx context.Context, id int64, view *application.UserResponse) error {
	return helpers.RedisSetJSON(ctx, c.rdb, userViewKey(id), view, c.ttl)
}

func (c *UserViewCache) Invalidate(ctx context.Context, id int64) error {
	return helpers.RedisDel(ctx, c.rdb, userViewKey(id))
}

var _ application.ViewCache = (*UserViewCache)(nil)
