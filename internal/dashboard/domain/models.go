// Package domain contains the admin dashboard snapshot types.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DashboardStat is a write-through snapshot row: stats are recomputed on
// every fetch and upserted here by name, so the table always holds the
// last served values without any invalidation logic.
type DashboardStat struct {
	StatName  string         `gorm:"column:stat_name;primaryKey;type:text" json:"stat_name"`
	StatValue datatypes.JSON `gorm:"column:stat_value;type:json;not null" json:"stat_value"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (DashboardStat) TableName() string { return "dashboard_stats" }

type StatValue struct {
	Value  float64 `json:"value"`
	Period string  `json:"period"` // all_time or current
}

// ActivityView is an activity row joined with the acting admin's name.
type ActivityView struct {
	Action     string         `json:"action"`
	EntityType *string        `json:"entity_type,omitempty"`
	EntityID   *string        `json:"entity_id,omitempty"`
	Details    datatypes.JSON `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
}
