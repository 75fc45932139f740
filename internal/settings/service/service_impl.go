package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	"github.com/novayra/storefront/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Store    *config.StoreConfigHolder
	Repo     domain.Repository
	Activity activitydomain.Service
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	store    *config.StoreConfigHolder
	repo     domain.Repository
	activity activitydomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("settings.service"),
		clock:    p.Clock,
		store:    p.Store,
		repo:     p.Repo,
		activity: p.Activity,
	}
}

func (s *Service) Grouped(ctx context.Context) (map[string][]domain.Setting, error) {
	settings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.Setting, len(domain.Groups))
	for _, g := range domain.Groups {
		grouped[g] = []domain.Setting{}
	}
	for _, setting := range settings {
		g := domain.GroupFor(setting.SettingKey)
		grouped[g] = append(grouped[g], setting)
	}
	return grouped, nil
}

func (s *Service) BulkUpdate(ctx context.Context, adminID snowflake.ID, updates []domain.KeyValue) error {
	if len(updates) == 0 {
		return domain.ErrSettingsRequired
	}

	now := s.clock.Now().UTC()
	for _, kv := range updates {
		key := strings.TrimSpace(kv.SettingKey)
		if key == "" {
			continue
		}
		if err := s.repo.UpdateValue(ctx, key, kv.SettingValue, now); err != nil {
			return err
		}
	}

	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "UPDATE_SETTINGS",
		EntityType: "site_settings",
		Details:    map[string]any{"updated_settings": len(updates)},
	})
	return nil
}

func (s *Service) ResetDefaults(ctx context.Context, adminID snowflake.ID) (int, error) {
	defaults := s.store.Get().DefaultSettings

	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := s.clock.Now().UTC()
	for _, key := range keys {
		setting := &domain.Setting{
			SettingKey:   key,
			SettingValue: defaults[key],
			SettingType:  "string",
			UpdatedAt:    now,
		}
		if err := s.repo.Upsert(ctx, setting); err != nil {
			return 0, err
		}
	}

	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "RESET_SETTINGS",
		EntityType: "site_settings",
		Details:    map[string]any{"reset_settings": len(keys)},
	})
	return len(keys), nil
}

func (s *Service) TestEmail(ctx context.Context, email string) (domain.TestEmailResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.TestEmailResult{}, domain.ErrEmailRequired
	}

	settings, err := s.repo.ListByPrefix(ctx, "email_")
	if err != nil {
		return domain.TestEmailResult{}, err
	}

	values := map[string]string{}
	for _, setting := range settings {
		values[setting.SettingKey] = setting.SettingValue
	}

	// No mail is actually sent; the endpoint only reports what a send
	// would use so admins can eyeball the config.
	return domain.TestEmailResult{
		Message: fmt.Sprintf("Test email would be sent to %s", email),
		Config: map[string]string{
			"smtp_host": orNotConfigured(values["email_smtp_host"]),
			"smtp_port": orNotConfigured(values["email_smtp_port"]),
			"smtp_user": orNotConfigured(values["email_smtp_user"]),
		},
	}, nil
}

func orNotConfigured(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not configured"
	}
	return v
}
