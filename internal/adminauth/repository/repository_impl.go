package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/adminauth/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) CreateSession(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repo) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repo) DeleteSession(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Session{}).Error
}

func (r *repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}

func (r *repo) UpdateLastSeen(ctx context.Context, id snowflake.ID, seenAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Update("last_seen_at", seenAt).Error
}
