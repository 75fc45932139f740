// Package domain contains types for admin panel sessions. Admin access
// uses opaque server-side sessions rather than the signed tokens customers
// get, so a session can be revoked the moment an admin logs out.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Session struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	UserID     snowflake.ID `gorm:"column:user_id;not null;index"`
	TokenHash  string       `gorm:"column:token_hash;type:text;not null;uniqueIndex"`
	IPAddress  string       `gorm:"column:ip_address;type:text"`
	UserAgent  string       `gorm:"column:user_agent;type:text"`
	ExpiresAt  time.Time    `gorm:"column:expires_at;not null"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt time.Time    `gorm:"column:last_seen_at;not null"`
}

func (Session) TableName() string { return "admin_sessions" }
