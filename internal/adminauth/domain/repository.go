package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	CreateSession(ctx context.Context, session *Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteSession(ctx context.Context, id snowflake.ID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	UpdateLastSeen(ctx context.Context, id snowflake.ID, seenAt time.Time) error
}
