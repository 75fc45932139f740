package seed

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/auth/password"
	settingsdomain "github.com/novayra/storefront/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultAdminEmail     = "admin@novayra.com"
	defaultAdminPassword  = "admin123"
	defaultAdminFirstName = "Novayra"
	defaultAdminLastName  = "Admin"
)

// EnsureAdminUser seeds the default admin account so a fresh install has a
// working admin panel login. The password must be changed in production.
func EnsureAdminUser(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.WithContext(ctx).
			Where("email = ?", defaultAdminEmail).
			First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(defaultAdminPassword)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		user = authdomain.User{
			ID:           node.Generate(),
			Email:        strings.ToLower(defaultAdminEmail),
			PasswordHash: hashed,
			FirstName:    defaultAdminFirstName,
			LastName:     defaultAdminLastName,
			IsAdmin:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.WithContext(ctx).Create(&user).Error
	})
}

// EnsureDefaultSettings inserts any missing site settings without touching
// values an admin has already edited.
func EnsureDefaultSettings(db *gorm.DB, defaults map[string]string) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ctx := context.Background()
	now := time.Now().UTC()
	for _, key := range keys {
		setting := settingsdomain.Setting{
			SettingKey:   key,
			SettingValue: defaults[key],
			SettingType:  "string",
			UpdatedAt:    now,
		}
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoNothing: true,
			}).
			Create(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}
