package rndf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIDRoundTrip(t *testing.T) {
	id, err := ParseUniqueID("12.0.7")
	require.NoError(t, err)
	assert.Equal(t, UniqueID{X: 12, Y: 0, Z: 7}, id)
	assert.True(t, id.Valid())
	assert.Equal(t, "12.0.7", id.String())
}

func TestParseUniqueIDRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.2.x", "1. 2.3", "-1.2.3", "0.1.1", "1.1.0", "40000.1.1"} {
		id, err := ParseUniqueID(s)
		assert.Error(t, err, s)
		assert.False(t, id.Valid(), s)
	}
}

func TestNewUniqueIDRange(t *testing.T) {
	assert.True(t, NewUniqueID(1, 0, 1).Valid())
	assert.True(t, NewUniqueID(32768, 32768, 32768).Valid())
	assert.False(t, NewUniqueID(0, 1, 1).Valid())
	assert.False(t, NewUniqueID(1, -1, 1).Valid())
	assert.False(t, NewUniqueID(1, 1, 0).Valid())
	assert.False(t, NewUniqueID(32769, 1, 1).Valid())
}
