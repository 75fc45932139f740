// Package domain contains the admin activity log types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	UserID     *snowflake.ID     `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Action     string            `gorm:"type:text;not null;index" json:"action"`
	EntityType *string           `gorm:"column:entity_type;type:text" json:"entity_type,omitempty"`
	EntityID   *string           `gorm:"column:entity_id;type:text" json:"entity_id,omitempty"`
	Details    datatypes.JSONMap `gorm:"type:json" json:"details,omitempty"`
	IPAddress  *string           `gorm:"column:ip_address;type:text" json:"ip_address,omitempty"`
	UserAgent  *string           `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
