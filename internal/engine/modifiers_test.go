package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
)

func TestComputeModifiersEmptyBoard(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))
	assert.Equal(t, ModifierSet{}, ComputeModifiers(gs, p))
}

func TestComputeModifiersPerZoneBonuses(t *testing.T) {
	tests := []struct {
		zone board.ZoneName
		want ModifierSet
	}{
		{board.ZoneQian, ModifierSet{ExtraAP: 1}},
		{board.ZoneKun, ModifierSet{HandLimitBonus: 2}},
		{board.ZoneXun, ModifierSet{QiDiscount: 1}},
		{board.ZoneKan, ModifierSet{FreeStudy: true}},
		{board.ZoneLi, ModifierSet{InsightOnTask: 1}},
		{board.ZoneDui, ModifierSet{ExtraInfluence: 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			p := testPlayer("A", 0, 0, 0)
			gs := testState(p, testPlayer("B", 0, 0, 0))
			require.NoError(t, gs.Board.AddInfluence(tt.zone, "A", 3))
			assert.Equal(t, tt.want, ComputeModifiers(gs, p))
		})
	}
}

func TestComputeModifiersStackAdditively(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))

	// 乾 and 震 both grant AP; 坤 and 艮 both widen the hand cap.
	require.NoError(t, gs.Board.AddInfluence(board.ZoneQian, "A", 3))
	require.NoError(t, gs.Board.AddInfluence(board.ZoneZhen, "A", 3))
	require.NoError(t, gs.Board.AddInfluence(board.ZoneKun, "A", 3))
	require.NoError(t, gs.Board.AddInfluence(board.ZoneGen, "A", 3))

	mods := ComputeModifiers(gs, p)
	assert.Equal(t, 2, mods.ExtraAP)
	assert.Equal(t, 4, mods.HandLimitBonus)
}

func TestComputeModifiersIsPure(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))
	require.NoError(t, gs.Board.AddInfluence(board.ZoneXun, "A", 3))

	first := ComputeModifiers(gs, p)
	second := ComputeModifiers(gs, p)
	assert.Equal(t, first, second)
	assert.Equal(t, Checksum(gs), Checksum(gs.Clone()))
}

func TestComputeModifiersOnlyOwnZonesCount(t *testing.T) {
	a := testPlayer("A", 0, 0, 0)
	b := testPlayer("B", 0, 0, 0)
	gs := testState(a, b)
	require.NoError(t, gs.Board.AddInfluence(board.ZoneQian, "B", 3))

	assert.Equal(t, ModifierSet{}, ComputeModifiers(gs, a))
	assert.Equal(t, ModifierSet{ExtraAP: 1}, ComputeModifiers(gs, b))
}

func TestMoveCostFloorsAtZero(t *testing.T) {
	assert.Equal(t, 1, ModifierSet{}.MoveCost())
	assert.Equal(t, 0, ModifierSet{QiDiscount: 1}.MoveCost())
	assert.Equal(t, 0, ModifierSet{QiDiscount: 3}.MoveCost())
}
