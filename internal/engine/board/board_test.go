package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityFor(t *testing.T) {
	assert.Equal(t, 5, CapacityFor(2))
	assert.Equal(t, 6, CapacityFor(3))
	assert.Equal(t, 7, CapacityFor(4))
	assert.Equal(t, 7, CapacityFor(8))
}

func TestControlThreshold(t *testing.T) {
	assert.Equal(t, 3, New(2).ControlThreshold())
	assert.Equal(t, 4, New(3).ControlThreshold())
	assert.Equal(t, 4, New(4).ControlThreshold())
}

func TestAddInfluenceGrantsControlAtThreshold(t *testing.T) {
	b := New(2) // capacity 5, threshold 3

	require.NoError(t, b.AddInfluence(ZoneQian, "A", 2))
	assert.Equal(t, "", b.Controller(ZoneQian), "sub-threshold lead must not control")

	require.NoError(t, b.AddInfluence(ZoneQian, "A", 1))
	assert.Equal(t, "A", b.Controller(ZoneQian))
}

func TestTieAtMaxRevertsControl(t *testing.T) {
	// Scenario from the control rule: A reaches 3 and controls 乾, then B
	// also reaches 3. Leaders tie at max, so control reverts to none even
	// though both exceed the threshold.
	b := New(2)

	require.NoError(t, b.AddInfluence(ZoneQian, "A", 3))
	require.Equal(t, "A", b.Controller(ZoneQian))

	require.NoError(t, b.AddInfluence(ZoneQian, "B", 3))
	assert.Equal(t, "", b.Controller(ZoneQian))
}

func TestTieNeverControlsRegardlessOfMax(t *testing.T) {
	b := New(2)
	require.NoError(t, b.AddInfluence(ZoneKan, "A", 5))
	require.NoError(t, b.AddInfluence(ZoneKan, "B", 5))
	assert.Equal(t, "", b.Controller(ZoneKan))
}

func TestControlRegainedAfterTieBreaks(t *testing.T) {
	b := New(2)
	require.NoError(t, b.AddInfluence(ZoneLi, "A", 3))
	require.NoError(t, b.AddInfluence(ZoneLi, "B", 3))
	require.Equal(t, "", b.Controller(ZoneLi))

	require.NoError(t, b.AddInfluence(ZoneLi, "B", 1))
	assert.Equal(t, "B", b.Controller(ZoneLi))
}

func TestAddInfluenceRejectsBadInput(t *testing.T) {
	b := New(2)
	assert.Error(t, b.AddInfluence("无", "A", 1))
	assert.Error(t, b.AddInfluence(ZoneQian, "A", 0))
	assert.Error(t, b.AddInfluence(ZoneQian, "A", -2))
}

func TestClaimUncontrolledZone(t *testing.T) {
	b := New(2)

	require.NoError(t, b.ClaimUncontrolledZone(ZoneGen, "A"))
	assert.Equal(t, "A", b.Controller(ZoneGen))

	// Already controlled.
	assert.Error(t, b.ClaimUncontrolledZone(ZoneGen, "B"))

	// Contested zones cannot be claimed, even with a single sub-threshold marker.
	require.NoError(t, b.AddInfluence(ZoneDui, "B", 1))
	assert.Error(t, b.ClaimUncontrolledZone(ZoneDui, "A"))
}

func TestClaimDoesNotWeakenMajorityRule(t *testing.T) {
	b := New(2)
	require.NoError(t, b.ClaimUncontrolledZone(ZoneXun, "A"))

	// Influence placed afterwards re-arbitrates control under the normal rule.
	require.NoError(t, b.AddInfluence(ZoneXun, "B", 1))
	assert.Equal(t, "", b.Controller(ZoneXun))
}

func TestControlledBy(t *testing.T) {
	b := New(2)
	require.NoError(t, b.AddInfluence(ZoneQian, "A", 3))
	require.NoError(t, b.AddInfluence(ZoneKun, "A", 4))
	require.NoError(t, b.AddInfluence(ZoneZhen, "B", 3))

	assert.Equal(t, []ZoneName{ZoneQian, ZoneKun}, b.ControlledBy("A"))
	assert.Equal(t, 2, b.ControlledCount("A"))
	assert.Equal(t, 1, b.ControlledCount("B"))
	assert.Equal(t, 0, b.ControlledCount("C"))
}

func TestCopyIsolation(t *testing.T) {
	b := New(2)
	require.NoError(t, b.AddInfluence(ZoneQian, "A", 3))

	c := b.Copy()
	require.NoError(t, c.AddInfluence(ZoneQian, "B", 3))

	assert.Equal(t, "A", b.Controller(ZoneQian))
	assert.Equal(t, "", c.Controller(ZoneQian))
	assert.Equal(t, 0, b.Markers(ZoneQian, "B"))
}
