package resources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerGainAndGet(t *testing.T) {
	l := NewLedger()
	l.Gain(Energy, 5)
	l.Gain(Insight, 2)
	l.Gain(Sincerity, 1)

	assert.Equal(t, 5, l.Get(Energy))
	assert.Equal(t, 2, l.Get(Insight))
	assert.Equal(t, 1, l.Get(Sincerity))
	assert.Equal(t, 8, l.Total())

	// Non-positive gains are ignored.
	l.Gain(Energy, 0)
	l.Gain(Energy, -3)
	assert.Equal(t, 5, l.Get(Energy))
}

func TestLedgerSpend(t *testing.T) {
	l := NewLedger()
	l.Gain(Energy, 3)

	require.NoError(t, l.Spend(Energy, 2))
	assert.Equal(t, 1, l.Get(Energy))

	err := l.Spend(Energy, 2)
	require.Error(t, err)

	var insufficient *InsufficientError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, Energy, insufficient.Kind)
	assert.Equal(t, 2, insufficient.Need)
	assert.Equal(t, 1, insufficient.Have)

	// Failed spend must leave the ledger untouched.
	assert.Equal(t, 1, l.Get(Energy))
}

func TestLedgerSpendZero(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Spend(Insight, 0))
	require.NoError(t, l.Spend(Insight, -1))
	assert.Equal(t, 0, l.Get(Insight))
}

func TestLedgerCanAfford(t *testing.T) {
	l := NewLedger()
	l.Gain(Sincerity, 3)
	assert.True(t, l.CanAfford(Sincerity, 3))
	assert.False(t, l.CanAfford(Sincerity, 4))
	assert.True(t, l.CanAfford(Energy, 0))
}

func TestLedgerCopy(t *testing.T) {
	l := NewLedger()
	l.Gain(Energy, 4)

	c := l.Copy()
	c.Gain(Energy, 10)

	assert.Equal(t, 4, l.Get(Energy))
	assert.Equal(t, 14, c.Get(Energy))
}
