package engine

import (
	"fmt"
	"math/rand"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

const (
	minPlayers = 1
	maxPlayers = 8
)

// SetupGame builds the initial game state: players with avatars and starting
// resources, the board sized for the player count, and dealt starting hands.
func SetupGame(numPlayers int, cfg Config, rng *rand.Rand) (*GameState, error) {
	if numPlayers < minPlayers || numPlayers > maxPlayers {
		return nil, configErrorf("player count must be between %d and %d, got %d", minPlayers, maxPlayers, numPlayers)
	}

	avatars := []AvatarName{AvatarEmperor, AvatarHermit}

	players := make([]*Player, numPlayers)
	for i := 0; i < numPlayers; i++ {
		name := fmt.Sprintf("玩家%d", i+1)
		if numPlayers == 1 {
			name = "修行者"
		}
		avatar := avatars[i%len(avatars)]

		ledger := resources.NewLedger()
		ledger.Gain(resources.Energy, cfg.StartingEnergy)
		ledger.Gain(resources.Insight, cfg.StartingInsight)
		ledger.Gain(resources.Sincerity, cfg.StartingSincerity)
		switch avatar {
		case AvatarEmperor:
			ledger.Gain(resources.Energy, cfg.AvatarEnergyDelta)
		case AvatarHermit:
			ledger.Gain(resources.Insight, cfg.AvatarInsightDelta)
		}

		hand := make([]Card, 0, cfg.StartingHand)
		for j := 0; j < cfg.StartingHand; j++ {
			hand = append(hand, drawCard(rng))
		}

		players[i] = &Player{
			Name:          name,
			Avatar:        avatar,
			Resources:     ledger,
			Hand:          hand,
			Position:      LocationDi,
			InfluencePool: cfg.InfluencePool,
		}
	}

	return &GameState{
		Players:       players,
		Board:         board.New(numPlayers),
		Turn:          1,
		CurrentPlayer: 0,
	}, nil
}
