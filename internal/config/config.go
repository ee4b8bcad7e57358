// Package config loads the server configuration from a YAML file with
// environment-variable overrides, via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tianjibian/tianji-server-go/internal/engine"
	"github.com/tianjibian/tianji-server-go/internal/engine/fate"
)

// Config is the top-level server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
}

type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

type WebSocketConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	// URL is a pgx connection string. Empty disables result persistence.
	URL string `mapstructure:"url"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig mirrors engine.Config in file-friendly form. Thresholds are
// configuration, not engine contract.
type GameConfig struct {
	BaseActionPoints int `mapstructure:"base_action_points"`
	StartingHand     int `mapstructure:"starting_hand"`

	StartingEnergy    int `mapstructure:"starting_energy"`
	StartingInsight   int `mapstructure:"starting_insight"`
	StartingSincerity int `mapstructure:"starting_sincerity"`

	AvatarEnergyDelta  int `mapstructure:"avatar_energy_delta"`
	AvatarInsightDelta int `mapstructure:"avatar_insight_delta"`

	InfluencePool int `mapstructure:"influence_pool"`

	Victory VictoryConfig `mapstructure:"victory"`
	Balance BalanceConfig `mapstructure:"balance"`
}

type VictoryConfig struct {
	EnergyCeiling    int `mapstructure:"energy_ceiling"`
	InsightCeiling   int `mapstructure:"insight_ceiling"`
	SincerityCeiling int `mapstructure:"sincerity_ceiling"`

	CompositeEnabled         bool `mapstructure:"composite_enabled"`
	CompositeInsightWeight   int  `mapstructure:"composite_insight_weight"`
	CompositeSincerityWeight int  `mapstructure:"composite_sincerity_weight"`
	CompositeThreshold       int  `mapstructure:"composite_threshold"`

	TurnLimit int `mapstructure:"turn_limit"`
}

type BalanceConfig struct {
	HighThreshold   float64 `mapstructure:"high_threshold"`
	MediumThreshold float64 `mapstructure:"medium_threshold"`
	LowThreshold    float64 `mapstructure:"low_threshold"`

	HighBonus   int `mapstructure:"high_bonus"`
	MediumBonus int `mapstructure:"medium_bonus"`
	LowBonus    int `mapstructure:"low_bonus"`
}

// Load reads the configuration file at path. Missing file is not an error;
// defaults and TIANJI_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("TIANJI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.websocket.address", ":8090")
	v.SetDefault("database.url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	def := engine.DefaultConfig()
	v.SetDefault("game.base_action_points", def.BaseActionPoints)
	v.SetDefault("game.starting_hand", def.StartingHand)
	v.SetDefault("game.starting_energy", def.StartingEnergy)
	v.SetDefault("game.starting_insight", def.StartingInsight)
	v.SetDefault("game.starting_sincerity", def.StartingSincerity)
	v.SetDefault("game.avatar_energy_delta", def.AvatarEnergyDelta)
	v.SetDefault("game.avatar_insight_delta", def.AvatarInsightDelta)
	v.SetDefault("game.influence_pool", def.InfluencePool)

	v.SetDefault("game.victory.energy_ceiling", def.Victory.EnergyCeiling)
	v.SetDefault("game.victory.insight_ceiling", def.Victory.InsightCeiling)
	v.SetDefault("game.victory.sincerity_ceiling", def.Victory.SincerityCeiling)
	v.SetDefault("game.victory.composite_enabled", def.Victory.CompositeEnabled)
	v.SetDefault("game.victory.composite_insight_weight", def.Victory.CompositeInsightWeight)
	v.SetDefault("game.victory.composite_sincerity_weight", def.Victory.CompositeSincerityWeight)
	v.SetDefault("game.victory.composite_threshold", def.Victory.CompositeThreshold)
	v.SetDefault("game.victory.turn_limit", def.Victory.TurnLimit)

	v.SetDefault("game.balance.high_threshold", def.Balance.High)
	v.SetDefault("game.balance.medium_threshold", def.Balance.Medium)
	v.SetDefault("game.balance.low_threshold", def.Balance.Low)
	v.SetDefault("game.balance.high_bonus", def.Balance.HighBonus)
	v.SetDefault("game.balance.medium_bonus", def.Balance.MediumBonus)
	v.SetDefault("game.balance.low_bonus", def.Balance.LowBonus)
}

// EngineConfig converts the file form into the engine's parameter set.
func (g GameConfig) EngineConfig() engine.Config {
	return engine.Config{
		BaseActionPoints:   g.BaseActionPoints,
		StartingHand:       g.StartingHand,
		StartingEnergy:     g.StartingEnergy,
		StartingInsight:    g.StartingInsight,
		StartingSincerity:  g.StartingSincerity,
		AvatarEnergyDelta:  g.AvatarEnergyDelta,
		AvatarInsightDelta: g.AvatarInsightDelta,
		InfluencePool:      g.InfluencePool,
		Victory: engine.VictoryConfig{
			EnergyCeiling:            g.Victory.EnergyCeiling,
			InsightCeiling:           g.Victory.InsightCeiling,
			SincerityCeiling:         g.Victory.SincerityCeiling,
			CompositeEnabled:         g.Victory.CompositeEnabled,
			CompositeInsightWeight:   g.Victory.CompositeInsightWeight,
			CompositeSincerityWeight: g.Victory.CompositeSincerityWeight,
			CompositeThreshold:       g.Victory.CompositeThreshold,
			TurnLimit:                g.Victory.TurnLimit,
		},
		Balance: fate.BalanceThresholds{
			High:        g.Balance.HighThreshold,
			Medium:      g.Balance.MediumThreshold,
			Low:         g.Balance.LowThreshold,
			HighBonus:   g.Balance.HighBonus,
			MediumBonus: g.Balance.MediumBonus,
			LowBonus:    g.Balance.LowBonus,
		},
	}
}
