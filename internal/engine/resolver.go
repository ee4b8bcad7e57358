package engine

import (
	"fmt"
	"math/rand"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
	"github.com/tianjibian/tianji-server-go/internal/engine/fate"
	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

const (
	studyBaseDraw         = 2
	studyInsightThreshold = 5
	meditateBaseGain      = 3
	meditateConvertAt     = 10
	meditateConvertEnergy = 2
	meditateConvertGain   = 1
)

// meditateGains is the location-dependent energy gain for meditation.
var meditateGains = map[Location]int{
	LocationTian:  4,
	LocationRen:   3,
	LocationDi:    2,
	LocationTaiji: meditateBaseGain,
}

// TransformOutcome reports how a transformation attempt went.
type TransformOutcome struct {
	Template string
	Success  bool
	Chance   float64

	EnergyChange  int
	InsightChange int
}

// Result is the outcome of a resolved action: the new state plus any
// action-specific payload. AP accounting is the turn controller's job, not
// the resolver's.
type Result struct {
	State  *GameState
	Action ActionDescriptor

	DrewCards []Card
	Fortune   *fate.Outcome
	Transform *TransformOutcome
}

// ResolveAction applies one action to an immutable input state and returns a
// distinct output state, or a rejection. Actions are atomic: on error the
// input state is guaranteed untouched.
func ResolveAction(gs *GameState, playerName string, action ActionDescriptor, mods ModifierSet, rng *rand.Rand) (*Result, error) {
	if gs.Current().Name != playerName {
		return nil, fmt.Errorf("%w: %s acting on %s's turn", ErrIllegalTransition, playerName, gs.Current().Name)
	}

	next := gs.Clone()
	player := next.Current()
	result := &Result{State: next, Action: action}

	switch action.Kind {
	case ActionPass:
		return result, nil

	case ActionPlayCard:
		if err := resolvePlayCard(next, player, action, mods); err != nil {
			return nil, err
		}
		return result, nil

	case ActionMove:
		if err := resolveMove(player, action, mods); err != nil {
			return nil, err
		}
		return result, nil

	case ActionStudy:
		result.DrewCards = resolveStudy(player, action, mods, rng)
		return result, nil

	case ActionMeditate:
		resolveMeditate(player)
		return result, nil

	case ActionTransform:
		outcome, err := resolveTransform(player, action, rng)
		if err != nil {
			return nil, err
		}
		result.Transform = outcome
		return result, nil

	case ActionDivine:
		outcome, err := resolveFortune(player, resources.Energy, divineEnergyGate, rng)
		if err != nil {
			return nil, err
		}
		result.Fortune = outcome
		return result, nil

	case ActionConsult:
		outcome, err := resolveFortune(player, resources.Insight, consultInsightGate, rng)
		if err != nil {
			return nil, err
		}
		result.Fortune = outcome
		return result, nil

	case MenuWisdomProgress, MenuTutorial, MenuLearningProgress, MenuAchievements:
		// Informational: the state is returned unchanged (but distinct) so no
		// resolve call ever ambiguously no-ops. Content is presentation-side.
		return result, nil

	default:
		return nil, fmt.Errorf("%w: unknown action kind %s", ErrInvalidSelection, action.Kind)
	}
}

func resolvePlayCard(gs *GameState, player *Player, action ActionDescriptor, mods ModifierSet) error {
	if action.CardIndex < 0 || action.CardIndex >= len(player.Hand) {
		return fmt.Errorf("%w: card index %d out of range", ErrInvalidSelection, action.CardIndex)
	}
	card := player.Hand[action.CardIndex]
	zone := board.ZoneName(action.Zone)
	if !card.SupportsZone(zone) {
		return fmt.Errorf("%w: card %s cannot be played to %s", ErrInvalidSelection, card.Name, action.Zone)
	}

	player.Hand = append(player.Hand[:action.CardIndex], player.Hand[action.CardIndex+1:]...)

	influence := 1 + mods.ExtraInfluence
	if err := gs.Board.AddInfluence(zone, player.Name, influence); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	player.InfluencePool -= influence
	if player.InfluencePool < 0 {
		player.InfluencePool = 0
	}
	player.PlacedInfluenceThisTurn = true

	if card.Polarity == Yang {
		player.Balance.Yang++
	} else {
		player.Balance.Yin++
	}

	player.Resources.Gain(resources.Insight, mods.InsightOnTask)
	return nil
}

func resolveMove(player *Player, action ActionDescriptor, mods ModifierSet) error {
	if !ValidLocation(action.Target) {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidSelection, action.Target)
	}
	if action.Target == player.Position {
		return fmt.Errorf("%w: already at %s", ErrInvalidSelection, action.Target)
	}
	if err := player.Resources.Spend(resources.Energy, mods.MoveCost()); err != nil {
		return err
	}
	player.Position = action.Target
	return nil
}

func resolveStudy(player *Player, action ActionDescriptor, mods ModifierSet, rng *rand.Rand) []Card {
	draws := studyBaseDraw + mods.ExtraDraw
	if player.Position == LocationRen {
		draws++
	}

	drawn := make([]Card, 0, draws)
	for i := 0; i < draws; i++ {
		card := drawCard(rng)
		player.Hand = append(player.Hand, card)
		drawn = append(drawn, card)
	}

	if len(player.Hand) >= studyInsightThreshold {
		player.Resources.Gain(resources.Insight, 1)
	}
	if action.Cost == 0 {
		player.UsedFreeStudy = true
	}
	return drawn
}

func resolveMeditate(player *Player) {
	gain, ok := meditateGains[player.Position]
	if !ok {
		gain = meditateBaseGain
	}
	player.Resources.Gain(resources.Energy, gain)

	if player.Resources.Energy >= meditateConvertAt {
		// Accumulated qi condenses into sincerity.
		player.Resources.Energy -= meditateConvertEnergy
		player.Resources.Gain(resources.Sincerity, meditateConvertGain)
	}

	player.Balance.Yin++
}

func resolveTransform(player *Player, action ActionDescriptor, rng *rand.Rand) (*TransformOutcome, error) {
	// Defensive gate check: the catalog should never offer this below the gate.
	if !player.Resources.CanAfford(resources.Sincerity, transformSincerityGate) {
		return nil, &resources.InsufficientError{Kind: resources.Sincerity, Need: transformSincerityGate, Have: player.Resources.Sincerity}
	}

	tmpl, ok := templateByName(action.Template)
	if !ok {
		return nil, fmt.Errorf("%w: unknown transformation %q", ErrInvalidSelection, action.Template)
	}

	// Odds are read off the pre-payment state.
	chance := fate.TransformSuccessChance(tmpl.Risk, player.Resources.Insight, player.Balance.Ratio())

	if err := player.Resources.Spend(resources.Energy, tmpl.CostEnergy); err != nil {
		return nil, err
	}
	if err := player.Resources.Spend(resources.Insight, tmpl.CostInsight); err != nil {
		// Refund the energy so a rejected attempt has no partial effect.
		player.Resources.Gain(resources.Energy, tmpl.CostEnergy)
		return nil, err
	}

	outcome := &TransformOutcome{Template: tmpl.Name, Chance: chance}

	if rng.Float64() < chance {
		outcome.Success = true
		outcome.EnergyChange = int(float64(tmpl.CostEnergy)*tmpl.RewardMultiplier) - tmpl.CostEnergy
		outcome.InsightChange = int(float64(tmpl.CostInsight)*tmpl.RewardMultiplier) - tmpl.CostInsight
		player.Resources.Gain(resources.Energy, tmpl.CostEnergy+outcome.EnergyChange)
		player.Resources.Gain(resources.Insight, tmpl.CostInsight+outcome.InsightChange)
		player.Balance.Yang++
	} else {
		// Failure is a valid outcome branch, not an error: the cost is lost.
		outcome.EnergyChange = -tmpl.CostEnergy
		outcome.InsightChange = -tmpl.CostInsight
	}
	return outcome, nil
}

func resolveFortune(player *Player, gate resources.Kind, gateAmount int, rng *rand.Rand) (*fate.Outcome, error) {
	if !player.Resources.CanAfford(gate, gateAmount) {
		return nil, &resources.InsufficientError{Kind: gate, Need: gateAmount, Have: player.Resources.Get(gate)}
	}
	outcome := fate.DrawFortune(player.Resources.Insight, rng.Float64())
	player.FortuneLog = append(player.FortuneLog, outcome)
	return &outcome, nil
}
