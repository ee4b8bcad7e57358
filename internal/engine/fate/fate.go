// Package fate implements the probability-weighted sub-mechanics: yin/yang
// balance, hexagram transformation odds, and insight-tiered fortune draws.
// Every function here is a pure function of its inputs plus, where a draw is
// needed, a single roll supplied by the caller. No hidden state.
package fate

// Balance is a pair of non-negative yin/yang counters.
type Balance struct {
	Yin  int
	Yang int
}

// Ratio returns the normalized balance measure 2*min/(yin+yang), defined as
// 1.0 when both counters are zero. 1.0 is perfect balance, 0.0 total
// dominance of one side.
func (b Balance) Ratio() float64 {
	total := b.Yin + b.Yang
	if total == 0 {
		return 1.0
	}
	smaller := b.Yin
	if b.Yang < smaller {
		smaller = b.Yang
	}
	return float64(smaller*2) / float64(total)
}

// BalanceThresholds configures the step function mapping a balance ratio to
// a bonus.
type BalanceThresholds struct {
	High   float64
	Medium float64
	Low    float64

	HighBonus   int
	MediumBonus int
	LowBonus    int
}

// DefaultBalanceThresholds returns the standard 0.8/0.6/0.4 steps with
// bonuses 3/2/1.
func DefaultBalanceThresholds() BalanceThresholds {
	return BalanceThresholds{
		High:   0.8,
		Medium: 0.6,
		Low:    0.4,

		HighBonus:   3,
		MediumBonus: 2,
		LowBonus:    1,
	}
}

// Bonus returns the step-function bonus for the balance under the given
// thresholds.
func (b Balance) Bonus(t BalanceThresholds) int {
	ratio := b.Ratio()
	switch {
	case ratio >= t.High:
		return t.HighBonus
	case ratio >= t.Medium:
		return t.MediumBonus
	case ratio >= t.Low:
		return t.LowBonus
	default:
		return 0
	}
}

// Risk grades a transformation attempt.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

const (
	transformBaseRate = 0.7
	transformMinRate  = 0.10
	transformMaxRate  = 0.95
)

var riskModifiers = map[Risk]float64{
	RiskLow:    0.2,
	RiskMedium: 0.0,
	RiskHigh:   -0.3,
}

// TransformSuccessChance computes the success probability of a hexagram
// transformation from the risk level, the player's insight, and the yin/yang
// balance ratio. The insight bonus caps at 0.2 and a balanced state
// (ratio in [0.4, 0.6]) adds 0.1; the result is clamped to [0.10, 0.95].
func TransformSuccessChance(risk Risk, insight int, balanceRatio float64) float64 {
	rate := transformBaseRate + riskModifiers[risk]

	insightBonus := float64(insight) * 0.01
	if insightBonus > 0.2 {
		insightBonus = 0.2
	}
	rate += insightBonus

	if balanceRatio >= 0.4 && balanceRatio <= 0.6 {
		rate += 0.1
	}

	if rate < transformMinRate {
		return transformMinRate
	}
	if rate > transformMaxRate {
		return transformMaxRate
	}
	return rate
}
