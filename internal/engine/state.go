package engine

import (
	"github.com/tianjibian/tianji-server-go/internal/engine/board"
	"github.com/tianjibian/tianji-server-go/internal/engine/fate"
	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

// Location is one of the movement-only positions on the board.
type Location string

const (
	LocationDi    Location = "地"
	LocationRen   Location = "人"
	LocationTian  Location = "天"
	LocationTaiji Location = "太极"
)

// AllLocations lists the locations in their canonical order.
var AllLocations = []Location{LocationDi, LocationRen, LocationTian, LocationTaiji}

// ValidLocation reports whether loc names a real location.
func ValidLocation(loc Location) bool {
	for _, l := range AllLocations {
		if l == loc {
			return true
		}
	}
	return false
}

// AvatarName identifies a player's avatar. Avatars are cosmetic except for a
// one-off starting resource delta applied at setup.
type AvatarName string

const (
	AvatarEmperor AvatarName = "帝王"
	AvatarHermit  AvatarName = "隐士"
)

// Player is a participant. Created at setup, mutated only through the
// resolver, never removed mid-game.
type Player struct {
	Name   string
	Avatar AvatarName

	Resources *resources.Ledger
	Hand      []Card
	Position  Location

	// InfluencePool is the player's remaining marker supply.
	InfluencePool int

	Balance    fate.Balance
	FortuneLog []fate.Outcome

	// Per-turn transient flags, reset when the player's turn begins.
	PlacedInfluenceThisTurn bool
	UsedFreeStudy           bool
}

// Copy creates a deep copy of the player.
func (p *Player) Copy() *Player {
	c := *p
	c.Resources = p.Resources.Copy()
	c.Hand = make([]Card, len(p.Hand))
	copy(c.Hand, p.Hand)
	c.FortuneLog = make([]fate.Outcome, len(p.FortuneLog))
	copy(c.FortuneLog, p.FortuneLog)
	return &c
}

func (p *Player) resetTurnFlags() {
	p.PlacedInfluenceThisTurn = false
	p.UsedFreeStudy = false
}

// GameState owns the players (order fixes rotation), the board, and the turn
// counters. It is the unit of snapshotting: the resolver clones it and
// returns a distinct state, leaving the input untouched.
type GameState struct {
	Players       []*Player
	Board         *board.Board
	Turn          int
	CurrentPlayer int

	// ActiveEvent optionally names a global event in effect this round.
	ActiveEvent string
}

// Current returns the player whose turn it is.
func (gs *GameState) Current() *Player {
	return gs.Players[gs.CurrentPlayer]
}

// PlayerByName returns the named player, or nil.
func (gs *GameState) PlayerByName(name string) *Player {
	for _, p := range gs.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Clone creates a deep copy of the full game state.
func (gs *GameState) Clone() *GameState {
	players := make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.Copy()
	}
	return &GameState{
		Players:       players,
		Board:         gs.Board.Copy(),
		Turn:          gs.Turn,
		CurrentPlayer: gs.CurrentPlayer,
		ActiveEvent:   gs.ActiveEvent,
	}
}
