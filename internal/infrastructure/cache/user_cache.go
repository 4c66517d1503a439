// Package cache decorates the user repository with a read-through Redis
// cache. Only FindByID is served from cache; every write invalidates the
// entry, so the semantics of the wrapped repository are unchanged.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pommyhq/accounts-api/internal/domain/entity"
	"github.com/pommyhq/accounts-api/internal/domain/repository"
	"github.com/pommyhq/accounts-api/pkg/helpers"
)

func userKey(id string) string {
	return "user:profile:" + id
}

type UserRepository struct {
	next repository.UserRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewUserRepository(next repository.UserRepository, rdb *redis.Client, ttl time.Duration) *UserRepository {
	return &UserRepository{next: next, rdb: rdb, ttl: ttl}
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	ctx := context.Background()
	var cached entity.User
	if ok, err := helpers.RedisGetJSON(ctx, r.rdb, userKey(id), &cached); err == nil && ok {
		return &cached, nil
	}
	u, err := r.next.FindByID(id)
	if err != nil {
		return nil, err
	}
	_ = helpers.RedisSetJSON(ctx, r.rdb, userKey(id), u, r.ttl)
	return u, nil
}

// FindByEmail goes straight to storage; caching the email->user mapping
// would complicate invalidation on email change for no measurable win.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	return r.next.FindByEmail(email)
}

func (r *UserRepository) Save(u *entity.User) error {
	if err := r.next.Save(u); err != nil {
		return err
	}
	_ = helpers.RedisSetJSON(context.Background(), r.rdb, userKey(u.ID), u, r.ttl)
	return nil
}

func (r *UserRepository) Update(u *entity.User) error {
	if err := r.next.Update(u); err != nil {
		return err
	}
	_ = helpers.RedisDel(context.Background(), r.rdb, userKey(u.ID))
	return nil
}

func (r *UserRepository) Delete(id string) error {
	if err := r.next.Delete(id); err != nil {
		return err
	}
	_ = helpers.RedisDel(context.Background(), r.rdb, userKey(id))
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
