package match

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tianjibian/tianji-server-go/internal/engine"
)

func testManager() *Manager {
	eng := engine.NewEngine(engine.DefaultConfig(), zap.NewNop())
	return NewManager(eng, zap.NewNop())
}

func TestCreateAndGetGame(t *testing.T) {
	m := testManager()

	s, err := m.CreateGame(2)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("no-such-game")
	assert.False(t, ok)
}

func TestCreateGameRejectsBadPlayerCount(t *testing.T) {
	m := testManager()

	_, err := m.CreateGame(0)
	assert.Error(t, err)
	assert.Equal(t, 0, m.Count())
}

func TestRemoveGame(t *testing.T) {
	m := testManager()

	s, err := m.CreateGame(2)
	require.NoError(t, err)

	m.Remove(s.ID)
	assert.Equal(t, 0, m.Count())

	// Removing twice is harmless.
	m.Remove(s.ID)
}

func TestSessionActAndEndTurn(t *testing.T) {
	m := testManager()
	s, err := m.CreateGame(2)
	require.NoError(t, err)

	view := s.View()
	require.Len(t, view.Players, 2)
	first := view.CurrentPlayer

	actions := s.Actions()
	require.NotEmpty(t, actions)
	// Pass is always catalog entry 1.
	assert.Equal(t, "PASS", actions[0].Kind)

	result, err := s.Act(actions[0].ID)
	require.NoError(t, err)
	require.NotNil(t, result)

	verdict := s.EndTurn()
	assert.Nil(t, verdict)
	assert.NotEqual(t, first, s.View().CurrentPlayer)
	assert.Nil(t, s.Verdict())
}

func TestSessionRejectsUnknownAction(t *testing.T) {
	m := testManager()
	s, err := m.CreateGame(2)
	require.NoError(t, err)

	_, err = s.Act(9999)
	assert.ErrorIs(t, err, engine.ErrInvalidSelection)
}

func TestConcurrentGamesAreIsolated(t *testing.T) {
	m := testManager()

	const games = 8
	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := m.CreateGame(2)
			require.NoError(t, err)

			// Play a few full rounds: the first offered non-menu action,
			// then end the turn.
			for round := 0; round < 6; round++ {
				actions := s.Actions()
				require.NotEmpty(t, actions)
				for _, a := range actions {
					if !a.Menu {
						_, err := s.Act(a.ID)
						require.NoError(t, err)
						break
					}
				}
				if s.EndTurn() != nil {
					break
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, games, m.Count())
	assert.Len(t, m.IDs(), games)
}
