package domain

import (
	"context"
	"time"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Setting, error)
	ListByPrefix(ctx context.Context, prefix string) ([]Setting, error)
	UpdateValue(ctx context.Context, key, value string, now time.Time) error
	Upsert(ctx context.Context, setting *Setting) error
}
