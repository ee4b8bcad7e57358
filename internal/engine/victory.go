package engine

import "github.com/tianjibian/tianji-server-go/internal/engine/resources"

// VictoryType names the path a game ended through.
type VictoryType string

const (
	VictoryResource    VictoryType = "RESOURCE"
	VictoryZoneControl VictoryType = "ZONE_CONTROL"
	VictoryComposite   VictoryType = "COMPOSITE"
	VictoryTurnLimit   VictoryType = "TURN_LIMIT"
	VictoryStalemate   VictoryType = "STALEMATE"
)

// VictoryResult is a terminal verdict. Winner is empty for a stalemate.
type VictoryResult struct {
	Winner   string
	Type     VictoryType
	Resource resources.Kind // set for resource victories
}

// EvaluateVictory scans the state against the win conditions in priority
// order and returns a verdict, or nil while the game is still live. It is a
// pure read: the state is never mutated.
//
// Resource and composite checks iterate players in list order, so
// simultaneous qualifiers resolve to whoever is checked first. That is the
// documented tiebreak for those paths; the turn-limit path has its own.
func EvaluateVictory(gs *GameState, cfg Config) *VictoryResult {
	vc := cfg.Victory

	ceilings := []struct {
		kind    resources.Kind
		ceiling int
	}{
		{resources.Energy, vc.EnergyCeiling},
		{resources.Insight, vc.InsightCeiling},
		{resources.Sincerity, vc.SincerityCeiling},
	}
	for _, p := range gs.Players {
		for _, c := range ceilings {
			if c.ceiling > 0 && p.Resources.Get(c.kind) >= c.ceiling {
				return &VictoryResult{Winner: p.Name, Type: VictoryResource, Resource: c.kind}
			}
		}
	}

	// Zone control: strictly more than half of all zones.
	for _, p := range gs.Players {
		if gs.Board.ControlledCount(p.Name) > gs.Board.TotalZones()/2 {
			return &VictoryResult{Winner: p.Name, Type: VictoryZoneControl}
		}
	}

	if vc.CompositeEnabled {
		for _, p := range gs.Players {
			score := vc.CompositeInsightWeight*p.Resources.Insight +
				vc.CompositeSincerityWeight*p.Resources.Sincerity
			if score >= vc.CompositeThreshold {
				return &VictoryResult{Winner: p.Name, Type: VictoryComposite}
			}
		}
	}

	if vc.TurnLimit > 0 && gs.Turn > vc.TurnLimit {
		return &VictoryResult{Winner: tiebreakWinner(gs), Type: VictoryTurnLimit}
	}

	if !anyPlayerCanAct(gs, cfg) {
		return &VictoryResult{Type: VictoryStalemate}
	}

	return nil
}

// tiebreakWinner picks the turn-limit winner: most zones controlled, then
// highest summed resources, then earliest in the player list.
func tiebreakWinner(gs *GameState) string {
	best := gs.Players[0]
	bestZones := gs.Board.ControlledCount(best.Name)
	for _, p := range gs.Players[1:] {
		zones := gs.Board.ControlledCount(p.Name)
		switch {
		case zones > bestZones:
			best, bestZones = p, zones
		case zones == bestZones && p.Resources.Total() > best.Resources.Total():
			best = p
		}
	}
	return best.Name
}

// anyPlayerCanAct reports whether some player would be offered a real game
// action at a fresh turn's AP budget. Pass and menu entries don't count.
func anyPlayerCanAct(gs *GameState, cfg Config) bool {
	for _, p := range gs.Players {
		mods := ComputeModifiers(gs, p)
		ap := cfg.BaseActionPoints + mods.ExtraAP
		for _, action := range ValidActions(gs, p, ap, mods) {
			if action.Kind != ActionPass && !action.Kind.IsMenu() {
				return true
			}
		}
	}
	return false
}
