package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUUID_Deterministic(t *testing.T) {
	first, err := ToUUID(KindUser, "user-1")
	require.NoError(t, err)
	second, err := ToUUID(KindUser, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "10000000-0000-4000-8000-000000000001", first)
}

func TestToUUID_KindsNamespaceTheResult(t *testing.T) {
	user, err := ToUUID(KindUser, "user-1")
	require.NoError(t, err)
	city, err := ToUUID(KindCity, "city-1")
	require.NoError(t, err)
	assert.NotEqual(t, user, city)
	assert.Equal(t, "20000000-0000-4000-8000-000000000001", city)
}

func TestToUUID_CanonicalUUIDPassesThrough(t *testing.T) {
	canonical := "a81bc81b-dead-4e5d-abff-90865d1e13b1"
	mapped, err := ToUUID(KindPost, canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, mapped)
}

func TestToUUID_TrailingDigitsHexEncoded(t *testing.T) {
	mapped, err := ToUUID(KindPlace, "place-255")
	require.NoError(t, err)
	assert.Equal(t, "30000000-0000-4000-8000-0000000000ff", mapped)
}

func TestToUUID_NoDigitsIsAnError(t *testing.T) {
	_, err := ToUUID(KindMatch, "match-abc")
	assert.Error(t, err)
}

func TestToUUIDPtr_NilPassesThrough(t *testing.T) {
	mapped, err := ToUUIDPtr(KindCity, nil)
	require.NoError(t, err)
	assert.Nil(t, mapped)

	id := "city-2"
	mapped, err = ToUUIDPtr(KindCity, &id)
	require.NoError(t, err)
	require.NotNil(t, mapped)
	assert.Equal(t, "20000000-0000-4000-8000-000000000002", *mapped)
}
