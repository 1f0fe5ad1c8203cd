package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_BundleComplete(t *testing.T) {
	home := Home()

	assert.Equal(t, RegionName, home.Region)
	assert.NotEmpty(t, home.Notices)
	assert.NotEmpty(t, home.Locations)
	assert.NotEmpty(t, home.News)
	assert.NotEmpty(t, home.Contacts)
	assert.Contains(t, home.Utilities, "water_supply")
	assert.Contains(t, home.Utilities, "garbage_collection")

	for _, loc := range home.Locations {
		assert.NotEmpty(t, loc.Name)
		assert.NotZero(t, loc.Lat)
		assert.NotZero(t, loc.Lon)
	}
}

func TestRations_OneUnitPerRow(t *testing.T) {
	board := Rations()

	require.NotEmpty(t, board.Rates)
	assert.NotEmpty(t, board.Helpline)
	for area, rows := range board.Rates {
		require.NotEmpty(t, rows, area)
		for _, row := range rows {
			perKg := row.RatePerKg > 0
			perLiter := row.RatePerLiter > 0
			assert.NotEqual(t, perKg, perLiter, "%s/%s must be priced per kg or per liter, not both", area, row.Item)
			assert.NotEmpty(t, row.Availability)
		}
	}
}

func TestReactions_PaletteDistinct(t *testing.T) {
	palette := Reactions()
	require.NotEmpty(t, palette)
	assert.Equal(t, "👍", palette[0].Emoji)

	seen := map[string]bool{}
	for _, r := range palette {
		assert.NotEmpty(t, r.Label)
		assert.False(t, seen[r.Emoji], r.Emoji)
		seen[r.Emoji] = true
	}
}

func TestSampleMembers_IncludesGuest(t *testing.T) {
	members := SampleMembers()
	require.NotEmpty(t, members)

	var hasGuest bool
	for _, m := range members {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Avatar)
		if m.Name == "Guest User" {
			hasGuest = true
		}
	}
	assert.True(t, hasGuest)
}
