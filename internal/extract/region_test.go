package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundRegion(t *testing.T) {
	rs, err := NewRegionSpec("Unsere Leistungen", []string{"Gesamtbetrag"})
	require.NoError(t, err)

	region, ok := rs.Bound("intro\nUnsere Leistungen\nSeefracht EUR 1,00\nGesamtbetrag EUR 1,00")
	require.True(t, ok)
	assert.Contains(t, region, "Seefracht")
	assert.NotContains(t, region, "Gesamtbetrag")
}

func TestBoundRegionAbsentEndMarker(t *testing.T) {
	rs, err := NewRegionSpec("Unsere Leistungen", []string{"Gesamtbetrag"})
	require.NoError(t, err)

	// End marker only before the start marker: no region, no fallback to the
	// rest of the document.
	_, ok := rs.Bound("Gesamtbetrag oben\nUnsere Leistungen\nUnsere Leistungen\nSeefracht EUR 1,00")
	assert.False(t, ok)
}

func TestBoundRegionCandidateOrder(t *testing.T) {
	rs, err := NewRegionSpec("Unsere Leistungen", []string{"Gesamtbetrag", "Gesamtkosten", "Gesamt"})
	require.NoError(t, err)

	// Older variant wording still bounds via the fallback candidates.
	region, ok := rs.Bound("Unsere Leistungen\nTHC EUR 50,00\nGesamtkosten EUR 50,00")
	require.True(t, ok)
	assert.Contains(t, region, "THC")

	// When the preferred marker is present it wins even though "Gesamt" is a
	// prefix of it.
	region, ok = rs.Bound("Unsere Leistungen\nTHC EUR 50,00\nGesamtbetrag EUR 50,00\ntrailing Gesamt text")
	require.True(t, ok)
	assert.NotContains(t, region, "trailing")
}

func TestBoundRegionFirstEndAfterStartWins(t *testing.T) {
	rs, err := NewRegionSpec("Unsere Leistungen", []string{"Gesamt"})
	require.NoError(t, err)

	region, ok := rs.Bound("Unsere Leistungen A Gesamt B Gesamt")
	require.True(t, ok)
	assert.Equal(t, " A ", region)
}

func TestNewRegionSpecValidation(t *testing.T) {
	_, err := NewRegionSpec("Unsere Leistungen", nil)
	assert.Error(t, err)

	_, err = NewRegionSpec("broken(", []string{"Gesamt"})
	assert.Error(t, err)
}
