package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// Grouped returns all settings bucketed by key prefix.
	Grouped(ctx context.Context) (map[string][]Setting, error)

	BulkUpdate(ctx context.Context, adminID snowflake.ID, updates []KeyValue) error
	ResetDefaults(ctx context.Context, adminID snowflake.ID) (int, error)

	// TestEmail reports the SMTP config a test mail would use; it never
	// actually sends and never fails the request once validated.
	TestEmail(ctx context.Context, email string) (TestEmailResult, error)
}

type KeyValue struct {
	SettingKey   string `json:"setting_key"`
	SettingValue string `json:"setting_value"`
}
