// Package domain contains site settings types. Settings are flat key/value
// rows; the key prefix decides which admin panel group they show under.
package domain

import (
	"strings"
	"time"
)

type Setting struct {
	SettingKey   string    `gorm:"column:setting_key;primaryKey;type:text" json:"setting_key"`
	SettingValue string    `gorm:"column:setting_value;type:text;not null" json:"setting_value"`
	SettingType  string    `gorm:"column:setting_type;type:text;not null;default:'string'" json:"setting_type"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Setting) TableName() string { return "site_settings" }

// Groups orders the admin panel tabs; unknown prefixes fall into general.
var Groups = []string{"general", "email", "payment", "shipping", "social", "seo", "maintenance"}

// GroupFor returns the panel group for a setting key.
func GroupFor(key string) string {
	for _, g := range Groups {
		if strings.HasPrefix(key, g+"_") {
			return g
		}
	}
	return "general"
}

type TestEmailResult struct {
	Message string            `json:"message"`
	Config  map[string]string `json:"config"`
}
