package kernel_test

import (
	"strings"
	"testing"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocationCode(t *testing.T) {
	t.Run("should normalise case and whitespace", func(t *testing.T) {
		lc, err := kernel.NewLocationCode("  ka-560001 ")

		require.NoError(t, err)
		assert.Equal(t, "KA-560001", lc.String())
		require.NoError(t, lc.Validate())
	})

	testCases := []struct {
		name     string
		raw      string
		sentinel error
	}{
		{"empty", "   ", errs.ErrValueIsRequired},
		{"too short", "A", errs.ErrValueIsOutOfRange},
		{"too long", strings.Repeat("A", 33), errs.ErrValueIsOutOfRange},
		{"bad characters", "KA 56", errs.ErrValueIsInvalid},
		{"underscore", "KA_56", errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := kernel.NewLocationCode(tc.raw)
			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestLocationCode_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocationCode("mh-pune")
	b, _ := kernel.NewLocationCode("MH-PUNE")
	c, _ := kernel.NewLocationCode("MH-NASIK")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocationCode_ZeroValue(t *testing.T) {
	var lc kernel.LocationCode
	require.ErrorIs(t, lc.Validate(), kernel.ErrLocationCodeIsNotConstructed)
}
