package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capHit(v int64) *int64 {
	return &v
}

func TestHighestCapPlayer(t *testing.T) {
	players := []Player{
		{Name: "First", CapHit: capHit(6250000)},
		{Name: "Second", CapHit: capHit(6250000)},
		{Name: "Third", CapHit: capHit(4000000)},
	}

	highest := HighestCapPlayer(players)
	require.NotNil(t, highest)
	// Tie goes to the first player in source order.
	assert.Equal(t, "First", highest.Name)
	assert.Same(t, &players[0], highest)
}

func TestHighestCapPlayerSkipsUnsigned(t *testing.T) {
	players := []Player{
		{Name: "Prospect"},
		{Name: "Veteran", CapHit: capHit(1500000)},
	}

	highest := HighestCapPlayer(players)
	require.NotNil(t, highest)
	assert.Equal(t, "Veteran", highest.Name)
}

func TestHighestCapPlayerNoneSigned(t *testing.T) {
	assert.Nil(t, HighestCapPlayer([]Player{{Name: "A"}, {Name: "B"}}))
	assert.Nil(t, HighestCapPlayer(nil))
}

func TestNewTradeDerivesSignedState(t *testing.T) {
	signed := NewTrade("Oct 1 2025", "a trade", "https://puckpedia.com/trade/1", []Player{
		{Name: "Skater", CapHit: capHit(900000)},
	})
	assert.True(t, signed.HasSignedPlayers)
	require.NotNil(t, signed.HighestCap)
	assert.Equal(t, "Skater", signed.HighestCap.Name)

	unsigned := NewTrade("Oct 1 2025", "picks only", "https://puckpedia.com/trade/2", nil)
	assert.False(t, unsigned.HasSignedPlayers)
	assert.Nil(t, unsigned.HighestCap)
}
