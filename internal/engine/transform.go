package engine

import (
	"github.com/tianjibian/tianji-server-go/internal/engine/board"
	"github.com/tianjibian/tianji-server-go/internal/engine/fate"
)

// TransformTemplate is a named biangua transformation: a cost in resources, a
// reward multiplier applied on success, and a risk grade feeding the success
// formula. On success the player nets cost*(multiplier-1); on failure the
// full cost is forfeit.
type TransformTemplate struct {
	Name             string
	TargetZone       board.ZoneName
	CostEnergy       int
	CostInsight      int
	RewardMultiplier float64
	Risk             fate.Risk
}

var transformTemplates = []TransformTemplate{
	{Name: "潜龙勿用", TargetZone: board.ZoneQian, CostEnergy: 2, CostInsight: 0, RewardMultiplier: 1.5, Risk: fate.RiskLow},
	{Name: "厚德载物", TargetZone: board.ZoneKun, CostEnergy: 1, CostInsight: 1, RewardMultiplier: 1.5, Risk: fate.RiskLow},
	{Name: "雷霆万钧", TargetZone: board.ZoneZhen, CostEnergy: 3, CostInsight: 1, RewardMultiplier: 2.0, Risk: fate.RiskMedium},
	{Name: "上善若水", TargetZone: board.ZoneKan, CostEnergy: 2, CostInsight: 2, RewardMultiplier: 2.0, Risk: fate.RiskMedium},
	{Name: "否极泰来", TargetZone: board.ZoneLi, CostEnergy: 4, CostInsight: 2, RewardMultiplier: 3.0, Risk: fate.RiskHigh},
}

// TransformTemplates returns the available transformations.
func TransformTemplates() []TransformTemplate {
	out := make([]TransformTemplate, len(transformTemplates))
	copy(out, transformTemplates)
	return out
}

func templateByName(name string) (TransformTemplate, bool) {
	for _, t := range transformTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return TransformTemplate{}, false
}

// affordable reports whether the player can pay the template's cost.
func (t TransformTemplate) affordable(p *Player) bool {
	return p.Resources.Energy >= t.CostEnergy && p.Resources.Insight >= t.CostInsight
}
