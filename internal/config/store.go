package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// StoreConfig carries storefront defaults that admins can reset site
// settings to. It is hot-reloadable from store.yml so merchandising can
// be tuned without a redeploy.
type StoreConfig struct {
	Currency          string            `mapstructure:"currency"`
	CurrencySymbol    string            `mapstructure:"currencySymbol"`
	FreeShippingAbove float64           `mapstructure:"freeShippingAbove"`
	DefaultShipping   float64           `mapstructure:"defaultShipping"`
	LowStockThreshold int               `mapstructure:"lowStockThreshold"`
	DefaultSettings   map[string]string `mapstructure:"defaultSettings"`
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Currency:          "INR",
		CurrencySymbol:    "₹",
		FreeShippingAbove: 5000,
		DefaultShipping:   200,
		LowStockThreshold: 10,
		DefaultSettings: map[string]string{
			"general_site_name":        "Novayra",
			"general_site_description": "Luxury Perfume Brand",
			"general_contact_email":    "contact@novayra.com",
			"general_contact_phone":    "+91-9876543210",
			"general_address":          "Mumbai, Maharashtra, India",
			"email_smtp_host":          "smtp.gmail.com",
			"email_smtp_port":          "587",
			"email_smtp_user":          "",
			"email_smtp_password":      "",
			"payment_currency":         "INR",
			"payment_currency_symbol":  "₹",
			"shipping_free_threshold":  "5000",
			"shipping_default_cost":    "200",
			"social_facebook":          "",
			"social_instagram":         "",
			"social_twitter":           "",
			"seo_meta_title":           "Novayra - Luxury Perfumes",
			"seo_meta_description":     "Discover luxury perfumes at Novayra",
			"seo_meta_keywords":        "perfume, luxury, fragrance, novayra",
		},
	}
}

type StoreConfigHolder struct {
	current atomic.Value // holds StoreConfig
}

func NewStoreConfigHolder() (*StoreConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("store")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/novayra")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NOVAYRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultStoreConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		v.SetDefault("store.currency", defaults.Currency)
		v.SetDefault("store.currencySymbol", defaults.CurrencySymbol)
		v.SetDefault("store.freeShippingAbove", defaults.FreeShippingAbove)
		v.SetDefault("store.defaultShipping", defaults.DefaultShipping)
		v.SetDefault("store.lowStockThreshold", defaults.LowStockThreshold)
		v.SetDefault("store.defaultSettings", defaults.DefaultSettings)
	}

	var cfg StoreConfig
	if err := v.UnmarshalKey("store", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.DefaultSettings) == 0 {
		cfg.DefaultSettings = defaults.DefaultSettings
	}
	if err := validateStoreConfig(cfg); err != nil {
		return nil, err
	}

	holder := &StoreConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated StoreConfig
		if err := v.UnmarshalKey("store", &updated); err != nil {
			log.Printf("[store-config] reload failed: %v", err)
			return
		}
		if len(updated.DefaultSettings) == 0 {
			updated.DefaultSettings = defaults.DefaultSettings
		}
		if err := validateStoreConfig(updated); err != nil {
			log.Printf("[store-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[store-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *StoreConfigHolder) Get() StoreConfig {
	return h.current.Load().(StoreConfig)
}

func validateStoreConfig(cfg StoreConfig) error {
	if strings.TrimSpace(cfg.Currency) == "" {
		return errors.New("store.currency cannot be empty")
	}
	if cfg.LowStockThreshold < 0 {
		return errors.New("store.lowStockThreshold cannot be negative")
	}
	return nil
}
