package engine

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// TurnController orchestrates the player rotation and per-turn AP budget. It
// owns the single authoritative state reference and the RNG; the resolver and
// evaluator stay pure. One controller per game, never shared across games.
type TurnController struct {
	state  *GameState
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger

	ap      int
	mods    ModifierSet
	verdict *VictoryResult
}

// NewTurnController wraps a freshly set up state and opens the first turn.
func NewTurnController(state *GameState, cfg Config, rng *rand.Rand, logger *zap.Logger) *TurnController {
	tc := &TurnController{
		state:  state,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
	tc.beginTurn()
	return tc
}

// State returns the current authoritative state.
func (tc *TurnController) State() *GameState {
	return tc.state
}

// RemainingAP returns the current player's remaining action points.
func (tc *TurnController) RemainingAP() int {
	return tc.ap
}

// Modifiers returns the modifier set in effect for the current player.
func (tc *TurnController) Modifiers() ModifierSet {
	return tc.mods
}

// Verdict returns the terminal result once the game has ended, else nil.
func (tc *TurnController) Verdict() *VictoryResult {
	return tc.verdict
}

// ValidActions returns the catalog for the current player at the remaining AP.
func (tc *TurnController) ValidActions() map[int]ActionDescriptor {
	return ValidActions(tc.state, tc.state.Current(), tc.ap, tc.mods)
}

// Apply resolves the catalog entry with the given id, deducts its AP cost,
// adopts the new state, and recomputes modifiers from the new board. Pass
// spends the rest of the turn's budget.
func (tc *TurnController) Apply(actionID int) (*Result, error) {
	if tc.verdict != nil {
		return nil, fmt.Errorf("%w: game already ended", ErrIllegalTransition)
	}

	action, ok := tc.ValidActions()[actionID]
	if !ok {
		return nil, fmt.Errorf("%w: action id %d not in catalog", ErrInvalidSelection, actionID)
	}

	player := tc.state.Current()
	result, err := ResolveAction(tc.state, player.Name, action, tc.mods, tc.rng)
	if err != nil {
		return nil, err
	}

	tc.state = result.State
	tc.ap -= action.Cost
	if action.Kind == ActionPass {
		tc.ap = 0
	}
	tc.mods = ComputeModifiers(tc.state, tc.state.Current())

	tc.logger.Debug("action resolved",
		zap.String("player", player.Name),
		zap.Stringer("kind", action.Kind),
		zap.Int("cost", action.Cost),
		zap.Int("remaining_ap", tc.ap),
	)
	return result, nil
}

// EndTurn evaluates victory, then rotates to the next player (bumping the
// turn counter when the rotation wraps) and opens their turn. Returns the
// verdict when the game is over.
func (tc *TurnController) EndTurn() *VictoryResult {
	if tc.verdict != nil {
		return tc.verdict
	}

	if verdict := EvaluateVictory(tc.state, tc.cfg); verdict != nil {
		tc.verdict = verdict
		tc.logger.Info("game over",
			zap.String("winner", verdict.Winner),
			zap.String("victory", string(verdict.Type)),
			zap.Int("turn", tc.state.Turn),
		)
		return verdict
	}

	next := tc.state.Clone()
	next.CurrentPlayer = (next.CurrentPlayer + 1) % len(next.Players)
	if next.CurrentPlayer == 0 {
		next.Turn++
	}
	tc.state = next
	tc.beginTurn()
	return nil
}

func (tc *TurnController) beginTurn() {
	player := tc.state.Current()
	player.resetTurnFlags()
	tc.mods = ComputeModifiers(tc.state, player)
	tc.ap = tc.cfg.BaseActionPoints + tc.mods.ExtraAP

	tc.logger.Debug("turn started",
		zap.Int("turn", tc.state.Turn),
		zap.String("player", player.Name),
		zap.Int("ap", tc.ap),
	)
}
