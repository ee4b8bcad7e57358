package engine

import "github.com/tianjibian/tianji-server-go/internal/engine/fate"

// Config carries the tunable game parameters. Exact thresholds are
// configuration, not engine contract; DefaultConfig holds the reference
// values.
type Config struct {
	BaseActionPoints int
	StartingHand     int

	StartingEnergy    int
	StartingInsight   int
	StartingSincerity int

	// AvatarEnergyDelta / AvatarInsightDelta are the one-off starting deltas
	// for the Emperor and Hermit avatars respectively.
	AvatarEnergyDelta  int
	AvatarInsightDelta int

	InfluencePool int

	Victory VictoryConfig
	Balance fate.BalanceThresholds
}

// VictoryConfig holds the thresholds for the independent win conditions.
type VictoryConfig struct {
	EnergyCeiling    int
	InsightCeiling   int
	SincerityCeiling int

	CompositeEnabled         bool
	CompositeInsightWeight   int
	CompositeSincerityWeight int
	CompositeThreshold       int

	TurnLimit int
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		BaseActionPoints: 2,
		StartingHand:     4,

		StartingEnergy:    8,
		StartingInsight:   1,
		StartingSincerity: 2,

		AvatarEnergyDelta:  1,
		AvatarInsightDelta: 1,

		InfluencePool: 15,

		Victory: VictoryConfig{
			EnergyCeiling:    25,
			InsightCeiling:   25,
			SincerityCeiling: 12,

			CompositeEnabled:         true,
			CompositeInsightWeight:   2,
			CompositeSincerityWeight: 2,
			CompositeThreshold:       60,

			TurnLimit: 50,
		},
		Balance: fate.DefaultBalanceThresholds(),
	}
}
