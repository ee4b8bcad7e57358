package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
)

func TestChecksumStableAcrossClones(t *testing.T) {
	gs, err := SetupGame(3, DefaultConfig(), testRNG())
	require.NoError(t, err)

	assert.Equal(t, Checksum(gs), Checksum(gs))
	assert.Equal(t, Checksum(gs), Checksum(gs.Clone()))
}

func TestChecksumChangesWithState(t *testing.T) {
	gs := testState(testPlayer("A", 8, 0, 0), testPlayer("B", 8, 0, 0))
	before := Checksum(gs)

	require.NoError(t, gs.Board.AddInfluence(board.ZoneQian, "A", 1))
	assert.NotEqual(t, before, Checksum(gs))
}

func TestCanonicalStringCoversZonesInOrder(t *testing.T) {
	gs := testState(testPlayer("A", 8, 0, 0), testPlayer("B", 8, 0, 0))
	rendered := CanonicalString(gs)

	last := -1
	for _, zone := range board.AllZones {
		idx := strings.Index(rendered, "ZONE:"+string(zone))
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, last, "zones must render in canonical order")
		last = idx
	}
}

func TestToViewReflectsState(t *testing.T) {
	a := testPlayer("A", 8, 1, 2)
	a.Hand = []Card{cardNamed("乾为天")}
	gs := testState(a, testPlayer("B", 8, 1, 2))
	require.NoError(t, gs.Board.AddInfluence(board.ZoneKun, "B", 4))

	view := ToView(gs)
	assert.Equal(t, "A", view.CurrentPlayer)
	assert.Equal(t, 1, view.Turn)
	require.Len(t, view.Players, 2)
	assert.Equal(t, 8, view.Players[0].Energy)
	require.Len(t, view.Players[0].Hand, 1)
	assert.Equal(t, "乾为天", view.Players[0].Hand[0].Name)

	var kun ZoneView
	for _, z := range view.Zones {
		if z.Name == "坤" {
			kun = z
		}
	}
	assert.Equal(t, "B", kun.Controller)
	assert.Equal(t, 4, kun.Markers["B"])
	assert.Equal(t, Checksum(gs), view.Checksum)
}

func TestActionsToViewAscendingIDs(t *testing.T) {
	p := testPlayer("A", 8, 3, 3)
	p.Hand = []Card{cardNamed("坎为水")}
	gs := testState(p, testPlayer("B", 0, 0, 0))

	views := ActionsToView(ValidActions(gs, p, 2, ModifierSet{}))
	for i := 1; i < len(views); i++ {
		assert.Greater(t, views[i].ID, views[i-1].ID)
	}
}
