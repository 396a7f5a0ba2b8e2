package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/balance"
	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string
	Port        int
	MetricsPort int `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// gymstats
	CatalogSeedPath   string   `toml:"catalog_seed_path"`
	CatalogCacheTTL   Duration `toml:"catalog_cache_ttl"`
	DraftTTL          Duration `toml:"draft_ttl"`
	AnalysisCacheTTL  Duration `toml:"analysis_cache_ttl"`
	AnalysisRateLimit int      `toml:"analysis_rate_limit"`
	AllowedOrigins    []string `toml:"allowed_origins"`
	McpEnabled        bool     `toml:"mcp_enabled"`

	Engine Engine `toml:"engine"`
}

// Engine holds the tunable constants of the volume, duration, recovery and balance models.
type Engine struct {
	WorkSeconds       int                                 `toml:"work_seconds"`
	RestSeconds       int                                 `toml:"rest_seconds"`
	SetsCount         int                                 `toml:"sets_count"`
	RestByEquipment   map[string]int                      `toml:"rest_by_equipment"`
	RestByCategory    map[string]int                      `toml:"rest_by_category"`
	Loads             map[string]map[string]training.Load `toml:"loads"`
	Recovery          recovery.Model                      `toml:"recovery"`
	IdealDistribution map[string]float64                  `toml:"ideal_distribution"`
	BalanceTolerance  float64                             `toml:"balance_tolerance"`
	NeglectDays       int                                 `toml:"neglect_days"`
	// ProgressionIncrease is the targeted volume increase over the last session, in percent
	ProgressionIncrease float64 `toml:"progression_increase"`
}

// Duration is a time.Duration decoded from a TOML string like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration [%s]: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// Defaults returns the planned-set defaults table, with configured values
// taking precedence over the standard table.
func (e Engine) Defaults() training.Defaults {
	defaults := training.StandardDefaults()
	if e.RestSeconds > 0 {
		defaults.RestSeconds = e.RestSeconds
	}
	if e.SetsCount > 0 {
		defaults.SetsCount = e.SetsCount
	}
	for equipment, rest := range e.RestByEquipment {
		if rest >= 0 {
			defaults.RestByEquipment[training.Equipment(equipment)] = rest
		}
	}
	for category, rest := range e.RestByCategory {
		if rest >= 0 {
			defaults.RestByCategory[training.Category(category)] = rest
		}
	}
	for equipment, byDifficulty := range e.Loads {
		eq := training.Equipment(equipment)
		if defaults.Loads[eq] == nil {
			defaults.Loads[eq] = make(map[training.Difficulty]training.Load)
		}
		for difficulty, load := range byDifficulty {
			defaults.Loads[eq][training.Difficulty(difficulty)] = load
		}
	}
	return defaults
}

// Ideal returns the configured ideal group distribution; unknown groups are ignored.
// A warning is logged when, merged over the defaults, the shares do not sum to 100.
func (e Engine) Ideal() map[muscles.Group]float64 {
	ideal := make(map[muscles.Group]float64, len(e.IdealDistribution))
	for name, pct := range e.IdealDistribution {
		for _, g := range muscles.AllGroups {
			if strings.EqualFold(name, g.String()) {
				ideal[g] = pct
			}
		}
	}

	merged := balance.DefaultIdealDistribution()
	for g, pct := range ideal {
		if pct >= 0 {
			merged[g] = pct
		}
	}
	sum := 0.0
	for _, pct := range merged {
		sum += pct
	}
	if math.Abs(sum-100) > 0.01 {
		log.Warnf("ideal group distribution sums to %.2f, not 100", sum)
	}

	return ideal
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.CatalogCacheTTL.Duration <= 0 {
		c.CatalogCacheTTL.Duration = 10 * time.Minute
	}
	if c.DraftTTL.Duration <= 0 {
		c.DraftTTL.Duration = 24 * time.Hour
	}
	if c.AnalysisCacheTTL.Duration <= 0 {
		c.AnalysisCacheTTL.Duration = time.Hour
	}
	if c.AnalysisRateLimit <= 0 {
		c.AnalysisRateLimit = 60
	}
	c.Engine.Recovery = c.Engine.Recovery.WithDefaults()
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics port must differ: %d", c.Port)
	}
	for name := range c.Engine.IdealDistribution {
		valid := false
		for _, g := range muscles.AllGroups {
			if strings.EqualFold(name, g.String()) {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("unknown muscle group in ideal distribution: %s", name)
		}
	}
	return nil
}
