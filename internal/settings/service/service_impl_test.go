package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	activityrepo "github.com/novayra/storefront/internal/activity/repository"
	activityservice "github.com/novayra/storefront/internal/activity/service"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	"github.com/novayra/storefront/internal/settings/domain"
	"github.com/novayra/storefront/internal/settings/repository"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSettingsService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.Setting{}, &activitydomain.ActivityLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fc := clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	holder, err := config.NewStoreConfigHolder()
	if err != nil {
		t.Fatalf("store config: %v", err)
	}

	activitySvc := activityservice.New(activityservice.Params{
		Log: zap.NewNop(), Clock: fc, GenID: node, Repo: activityrepo.New(conn),
	})

	svc := New(Params{
		Log:      zap.NewNop(),
		Clock:    fc,
		Store:    holder,
		Repo:     repository.New(conn),
		Activity: activitySvc,
	})
	return svc, conn, node
}

func TestResetDefaultsSeedsAllGroups(t *testing.T) {
	svc, _, node := setupSettingsService(t)
	adminID := node.Generate()

	count, err := svc.ResetDefaults(context.Background(), adminID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if count == 0 {
		t.Fatal("expected defaults to be written")
	}

	grouped, err := svc.Grouped(context.Background())
	if err != nil {
		t.Fatalf("grouped: %v", err)
	}
	for _, g := range domain.Groups {
		if _, ok := grouped[g]; !ok {
			t.Fatalf("group %q missing from response", g)
		}
	}
	if len(grouped["general"]) == 0 {
		t.Fatal("expected general settings after reset")
	}

	var siteName string
	for _, setting := range grouped["general"] {
		if setting.SettingKey == "general_site_name" {
			siteName = setting.SettingValue
		}
	}
	if siteName != "Novayra" {
		t.Fatalf("expected default site name, got %q", siteName)
	}
}

func TestBulkUpdate(t *testing.T) {
	svc, conn, node := setupSettingsService(t)
	adminID := node.Generate()

	if err := svc.BulkUpdate(context.Background(), adminID, nil); !errors.Is(err, domain.ErrSettingsRequired) {
		t.Fatalf("expected ErrSettingsRequired, got %v", err)
	}

	if _, err := svc.ResetDefaults(context.Background(), adminID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	err := svc.BulkUpdate(context.Background(), adminID, []domain.KeyValue{
		{SettingKey: "general_site_name", SettingValue: "Novayra Paris"},
	})
	if err != nil {
		t.Fatalf("bulk update: %v", err)
	}

	var setting domain.Setting
	if err := conn.Where("setting_key = ?", "general_site_name").First(&setting).Error; err != nil {
		t.Fatalf("read setting: %v", err)
	}
	if setting.SettingValue != "Novayra Paris" {
		t.Fatalf("update not applied, got %q", setting.SettingValue)
	}

	var logs int64
	if err := conn.Model(&activitydomain.ActivityLog{}).Where("action = ?", "UPDATE_SETTINGS").Count(&logs).Error; err != nil {
		t.Fatalf("count activity: %v", err)
	}
	if logs != 1 {
		t.Fatalf("expected 1 activity entry, got %d", logs)
	}
}

func TestTestEmailReportsConfig(t *testing.T) {
	svc, _, node := setupSettingsService(t)
	adminID := node.Generate()

	if _, err := svc.TestEmail(context.Background(), "  "); !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}

	if _, err := svc.ResetDefaults(context.Background(), adminID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	result, err := svc.TestEmail(context.Background(), "admin@novayra.com")
	if err != nil {
		t.Fatalf("test email: %v", err)
	}
	if result.Message != "Test email would be sent to admin@novayra.com" {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Config["smtp_host"] != "smtp.gmail.com" {
		t.Fatalf("unexpected smtp host %q", result.Config["smtp_host"])
	}
	// Blank values read back as unconfigured.
	if result.Config["smtp_user"] != "Not configured" {
		t.Fatalf("unexpected smtp user %q", result.Config["smtp_user"])
	}
}

func TestGroupFor(t *testing.T) {
	cases := map[string]string{
		"general_site_name": "general",
		"email_smtp_host":   "email",
		"payment_currency":  "payment",
		"shipping_free":     "shipping",
		"social_instagram":  "social",
		"seo_meta_title":    "seo",
		"maintenance_mode":  "maintenance",
		"mystery_key":       "general",
		"generalsomething":  "general",
	}
	for key, want := range cases {
		if got := domain.GroupFor(key); got != want {
			t.Fatalf("GroupFor(%q) = %q, want %q", key, got, want)
		}
	}
}
