package fate

// Outcome is a point on the ordered fortune scale, worst to best.
type Outcome int

const (
	MajorCurse Outcome = iota
	ModerateCurse
	MinorCurse
	Neutral
	MinorBlessing
	ModerateBlessing
	MajorBlessing
)

var outcomeNames = map[Outcome]string{
	MajorCurse:       "大凶",
	ModerateCurse:    "中凶",
	MinorCurse:       "小凶",
	Neutral:          "平",
	MinorBlessing:    "小吉",
	ModerateBlessing: "中吉",
	MajorBlessing:    "大吉",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "平"
}

// Favorable reports whether the outcome is non-negative.
func (o Outcome) Favorable() bool {
	return o >= Neutral
}

// Insight tier boundaries for the fortune scale.
const (
	fortuneLowInsight = 3
	fortuneMidInsight = 7
)

// FortuneScale returns the outcomes reachable at the given insight, with
// their sampling weights. Low insight only ever samples safe outcomes; higher
// insight widens the scale asymmetrically to include both better and worse
// extremes. The widening is the reward for cultivation and must not be
// flattened into a uniform draw.
func FortuneScale(insight int) ([]Outcome, []int) {
	switch {
	case insight <= fortuneLowInsight:
		return []Outcome{Neutral, MinorBlessing, ModerateBlessing},
			[]int{3, 2, 1}
	case insight <= fortuneMidInsight:
		return []Outcome{MinorCurse, Neutral, MinorBlessing, ModerateBlessing, MajorBlessing},
			[]int{1, 2, 3, 3, 1}
	default:
		return []Outcome{MajorCurse, ModerateCurse, MinorCurse, Neutral, MinorBlessing, ModerateBlessing, MajorBlessing},
			[]int{1, 1, 2, 3, 3, 2, 1}
	}
}

// DrawFortune maps a single roll in [0, 1) onto the weighted scale for the
// given insight.
func DrawFortune(insight int, roll float64) Outcome {
	outcomes, weights := FortuneScale(insight)

	total := 0
	for _, w := range weights {
		total += w
	}

	target := roll * float64(total)
	cumulative := 0.0
	for i, w := range weights {
		cumulative += float64(w)
		if target < cumulative {
			return outcomes[i]
		}
	}
	return outcomes[len(outcomes)-1]
}
