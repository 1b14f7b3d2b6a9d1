package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffee-wifi/internal/domain"
)

func TestCafeCreateAssignsIDAndListsInOrder(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))

	first := sampleCafe("Grind", "Shoreditch")
	second := sampleCafe("Monmouth", "Borough")
	require.NoError(t, r.Create(first))
	require.NoError(t, r.Create(second))
	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := r.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Grind", all[0].Name)
	assert.Equal(t, "Monmouth", all[1].Name)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestCafeCreateDuplicateName(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))

	require.NoError(t, r.Create(sampleCafe("Grind", "Shoreditch")))
	err := r.Create(sampleCafe("Grind", "Soho"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	all, err := r.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCafeListByLocationExactMatch(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	require.NoError(t, r.Create(sampleCafe("Grind", "Shoreditch")))
	require.NoError(t, r.Create(sampleCafe("Ozone", "Shoreditch")))
	require.NoError(t, r.Create(sampleCafe("Monmouth", "Borough")))

	got, err := r.ListByLocation("Shoreditch")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// 精确匹配：大小写和子串都不算
	got, err = r.ListByLocation("shoreditch")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.ListByLocation("Shore")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCafeFindByIDMissingIsNil(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	c, err := r.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCafeUpdateOverwritesAllFields(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	c := sampleCafe("Grind", "Shoreditch")
	require.NoError(t, r.Create(c))

	c.Location = "Soho"
	c.HasWifi = false // Save 必须把 false 也写回去
	c.CanTakeCalls = true
	require.NoError(t, r.Update(c))

	got, err := r.FindByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soho", got.Location)
	assert.False(t, got.HasWifi)
	assert.True(t, got.CanTakeCalls)
}

func TestCafeUpdateSameValuesIsStable(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	c := sampleCafe("Grind", "Shoreditch")
	require.NoError(t, r.Create(c))

	before, err := r.FindByID(c.ID)
	require.NoError(t, err)

	clone := *before
	require.NoError(t, r.Update(&clone))

	after, err := r.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCafeUpdateToTakenName(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	require.NoError(t, r.Create(sampleCafe("Grind", "Shoreditch")))
	other := sampleCafe("Monmouth", "Borough")
	require.NoError(t, r.Create(other))

	other.Name = "Grind"
	assert.ErrorIs(t, r.Update(other), domain.ErrDuplicateName)
}

func TestCafeDeleteMissingIsNoop(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	require.NoError(t, r.Create(sampleCafe("Grind", "Shoreditch")))

	require.NoError(t, r.Delete(999))

	all, err := r.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCafeDeleteRemovesRow(t *testing.T) {
	r := NewCafeRepo(newTestDB(t))
	c := sampleCafe("Grind", "Shoreditch")
	require.NoError(t, r.Create(c))

	require.NoError(t, r.Delete(c.ID))

	got, err := r.FindByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
