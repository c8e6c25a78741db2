package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	listenAddressKey  = "listen_address"
	metricsAddressKey = "metrics_address"
	storeDriverKey    = "store.driver"
	storeDSNKey       = "store.dsn"
	catalogPathKey    = "catalog_path"
	catalogWatchKey   = "catalog_watch"
	rateLimitRPSKey   = "rate_limit.rps"
	rateLimitBurstKey = "rate_limit.burst"

	envPrefix = "KARAOKESH"
)

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Config struct {
	ListenAddress  string          `mapstructure:"listen_address"`
	MetricsAddress string          `mapstructure:"metrics_address"`
	Store          StoreConfig     `mapstructure:"store"`
	CatalogPath    string          `mapstructure:"catalog_path"`
	CatalogWatch   bool            `mapstructure:"catalog_watch"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(listenAddressKey, ":50051")
	v.SetDefault(metricsAddressKey, ":9090")
	v.SetDefault(storeDriverKey, "sqlite3")
	v.SetDefault(storeDSNKey, "./karaokesh.db")
	v.SetDefault(catalogPathKey, "./catalog.yaml")
	v.SetDefault(catalogWatchKey, true)
	v.SetDefault(rateLimitRPSKey, 20.0)
	v.SetDefault(rateLimitBurstKey, 40)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("listen", ":50051", "gRPC listen address")
	flags.String("metrics", ":9090", "Prometheus listen address, empty to disable")
	flags.String("store-driver", "sqlite3", "Session store: sqlite3, pgx, file or memory")
	flags.String("store-dsn", "./karaokesh.db", "Session store DSN or file path")
	flags.String("catalog", "./catalog.yaml", "Business and fallback video catalog")

	v.BindPFlag(listenAddressKey, flags.Lookup("listen"))
	v.BindPFlag(metricsAddressKey, flags.Lookup("metrics"))
	v.BindPFlag(storeDriverKey, flags.Lookup("store-driver"))
	v.BindPFlag(storeDSNKey, flags.Lookup("store-dsn"))
	v.BindPFlag(catalogPathKey, flags.Lookup("catalog"))
}

// loadConfig merges defaults, the config file, KARAOKESH_* variables and
// flags. A missing config file is not an error.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("karaokesh")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Config file not found, using default values and environment variables.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.ListenAddress == "" {
		return Config{}, errors.New("listen_address is required")
	}
	if cfg.CatalogPath == "" {
		return Config{}, errors.New("catalog_path is required")
	}
	return cfg, nil
}
