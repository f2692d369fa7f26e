package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/domain/model/pricing"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	OrderSubtotal kernel.Money `env:"ORDER_SUBTOTAL" envDefault:"15.5"`
	OrderShipping kernel.Money `env:"ORDER_SHIPPING" envDefault:"0"`
	PromoCode     string       `env:"PROMO_CODE" envDefault:"welcome"`
	PromoDiscount kernel.Money `env:"PROMO_DISCOUNT" envDefault:"2.5"`

	WalletMockBalance kernel.Money `env:"WALLET_MOCK_BALANCE" envDefault:"123.45"`
	WalletCurrency    string       `env:"WALLET_CURRENCY" envDefault:"SEI"`
	WalletProviders   []string     `env:"WALLET_PROVIDERS" envDefault:"compass,ethereum" envSeparator:","`
	WalletAccounts    []string     `env:"WALLET_ACCOUNTS" envDefault:"sei1abc123def456ghi789jkl0mnopqrstuvwxyz42" envSeparator:","`
	WalletAuthorized  bool         `env:"WALLET_AUTHORIZED" envDefault:"false"`
	WalletReject      bool         `env:"WALLET_REJECT" envDefault:"false"`

	SettlementDelay time.Duration `env:"SETTLEMENT_DELAY" envDefault:"3s"`
	HandoffDelay    time.Duration `env:"HANDOFF_DELAY" envDefault:"2s"`
	// HandoffProgressOverride below zero means no override.
	HandoffProgressOverride int           `env:"HANDOFF_PROGRESS_OVERRIDE" envDefault:"-1"`
	TrackingStageInterval   time.Duration `env:"TRACKING_STAGE_INTERVAL" envDefault:"15s"`
	TrackingTickSpec        string        `env:"TRACKING_TICK_SPEC" envDefault:"*/1 * * * * *"`
}

var moneyParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(kernel.Money{}): func(v string) (interface{}, error) {
		return kernel.MoneyFromString(strings.TrimSpace(v))
	},
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	if err := env.ParseWithFuncs(&cfg, moneyParsers); err != nil {
		return Config{}, fmt.Errorf("error parsing env config: %w", err)
	}
	return cfg, nil
}

// Workflow converts the environment into the controller configuration.
func (c Config) Workflow() workflow.Config {
	var override *int
	if c.HandoffProgressOverride >= 0 {
		v := c.HandoffProgressOverride
		override = &v
	}

	var rules []pricing.PromoRule
	if c.PromoCode != "" {
		rules = append(rules, pricing.PromoRule{Code: c.PromoCode, Discount: c.PromoDiscount})
	}

	return workflow.Config{
		Subtotal:                c.OrderSubtotal,
		Shipping:                c.OrderShipping,
		PromoRules:              rules,
		MockBalance:             c.WalletMockBalance,
		Currency:                c.WalletCurrency,
		SettlementDelay:         c.SettlementDelay,
		HandoffDelay:            c.HandoffDelay,
		HandoffProgressOverride: override,
		StageInterval:           c.TrackingStageInterval,
	}
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
