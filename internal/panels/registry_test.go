package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	d, ok := Get(Comparison)
	require.True(t, ok)
	assert.Equal(t, CategoryComparison, d.Category)
	assert.NotEmpty(t, d.Name)
	assert.NotEmpty(t, d.Description)

	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range All() {
		assert.False(t, seen[d.ID], "duplicate panel id %q", d.ID)
		seen[d.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	for _, cat := range []Category{CategoryPlayer, CategoryComparison, CategoryMarket, CategorySchedule} {
		defs := ByCategory(cat)
		assert.NotEmpty(t, defs, "category %s", cat)
		for _, d := range defs {
			assert.Equal(t, cat, d.Category)
		}
	}
	assert.Empty(t, ByCategory("weather"))
}

func TestValid(t *testing.T) {
	got := Valid([]string{GameLog, "bogus", PlayerDetail, GameLog})
	assert.Equal(t, []string{GameLog, PlayerDetail}, got)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	d, _ := Get(all[0].ID)
	assert.NotEqual(t, "changed", d.Name)
}
