package engine

import (
	"math/rand"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

// testRNG returns a deterministic RNG for tests.
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// testPlayer builds a player with the given resources and an empty hand.
func testPlayer(name string, energy, insight, sincerity int) *Player {
	ledger := resources.NewLedger()
	ledger.Gain(resources.Energy, energy)
	ledger.Gain(resources.Insight, insight)
	ledger.Gain(resources.Sincerity, sincerity)
	return &Player{
		Name:          name,
		Avatar:        AvatarEmperor,
		Resources:     ledger,
		Position:      LocationDi,
		InfluencePool: 15,
	}
}

// testState builds a two-player state around the given players.
func testState(players ...*Player) *GameState {
	return &GameState{
		Players:       players,
		Board:         board.New(len(players)),
		Turn:          1,
		CurrentPlayer: 0,
	}
}

// cardNamed returns the pool card with the given name.
func cardNamed(name string) Card {
	for _, c := range cardPool {
		if c.Name == name {
			return c
		}
	}
	panic("unknown card " + name)
}
