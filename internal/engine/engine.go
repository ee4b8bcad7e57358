// Package engine is the authoritative game-state engine: the player/board
// model, action resolution, zone-control arbitration, and the multi-path
// victory evaluator. Presentation layers (rendering, tutorials, achievements,
// bot policies) consume it through Engine and TurnController and hold no
// engine invariants of their own.
package engine

import (
	"math/rand"

	"go.uber.org/zap"
)

// Engine bundles a parameter set with a logger and fronts the pure engine
// functions. Safe for concurrent use: it holds no per-game state.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine creates an engine with the given parameters.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine's parameter set.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetupGame builds a fresh game state for numPlayers using the supplied RNG.
func (e *Engine) SetupGame(numPlayers int, rng *rand.Rand) (*GameState, error) {
	gs, err := SetupGame(numPlayers, e.cfg, rng)
	if err != nil {
		return nil, err
	}
	e.logger.Info("game set up",
		zap.Int("players", numPlayers),
		zap.Int("board_capacity", gs.Board.Capacity),
	)
	return gs, nil
}

// NewTurnController opens play on a state. The RNG must be owned by this game
// alone; parallel simulations need one RNG each.
func (e *Engine) NewTurnController(state *GameState, rng *rand.Rand) *TurnController {
	return NewTurnController(state, e.cfg, rng, e.logger)
}

// GetValidActions enumerates the catalog for a player.
func (e *Engine) GetValidActions(gs *GameState, player *Player, ap int, mods ModifierSet) map[int]ActionDescriptor {
	return ValidActions(gs, player, ap, mods)
}

// ResolveAction applies one action, returning a new state or a rejection.
func (e *Engine) ResolveAction(gs *GameState, playerName string, action ActionDescriptor, mods ModifierSet, rng *rand.Rand) (*Result, error) {
	return ResolveAction(gs, playerName, action, mods, rng)
}

// ComputeModifiers derives a player's modifier set from the current board.
func (e *Engine) ComputeModifiers(gs *GameState, player *Player) ModifierSet {
	return ComputeModifiers(gs, player)
}

// EvaluateVictory checks the state against the win conditions.
func (e *Engine) EvaluateVictory(gs *GameState) *VictoryResult {
	return EvaluateVictory(gs, e.cfg)
}
