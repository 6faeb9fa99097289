package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onabhani/SimpleDashboard/internal/search"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const formsKey = "dashboard:forms"

// FormCache keeps form definitions in redis in front of another
// search.FormSource. Redis failures fall through to the wrapped source.
type FormCache struct {
	next   search.FormSource
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewFormCache(next search.FormSource, client *redis.Client, ttl time.Duration, log *zap.Logger) *FormCache {
	return &FormCache{next: next, client: client, ttl: ttl, log: log}
}

func (c *FormCache) Forms(ctx context.Context) ([]model.Form, error) {
	var forms []model.Form
	if c.get(ctx, formsKey, &forms) {
		return forms, nil
	}

	forms, err := c.next.Forms(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, formsKey, forms)
	return forms, nil
}

func (c *FormCache) Form(ctx context.Context, id int64) (model.Form, error) {
	key := formKey(id)
	var form model.Form
	if c.get(ctx, key, &form) {
		return form, nil
	}

	form, err := c.next.Form(ctx, id)
	if err != nil {
		return model.Form{}, err
	}
	c.set(ctx, key, form)
	return form, nil
}

// Invalidate drops every cached form definition.
func (c *FormCache) Invalidate(ctx context.Context, ids ...int64) error {
	keys := []string{formsKey}
	for _, id := range ids {
		keys = append(keys, formKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *FormCache) get(ctx context.Context, key string, dst interface{}) bool {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Sugar().Warnw("forms cache read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.log.Sugar().Warnw("forms cache entry corrupt", "key", key, "err", err)
		return false
	}
	return true
}

func (c *FormCache) set(ctx context.Context, key string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Sugar().Warnw("forms cache write failed", "key", key, "err", err)
	}
}

func formKey(id int64) string {
	return fmt.Sprintf("dashboard:form:%d", id)
}
