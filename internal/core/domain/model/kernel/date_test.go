package kernel_test

import (
	"testing"
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	morning := time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 15, 22, 0, 0, 0, time.UTC)

	assert.True(t, kernel.DateOf(morning).Equal(kernel.DateOf(evening)))
	assert.Equal(t, "2024-06-15", kernel.DateOf(morning).String())

	// 02:00 IST on the 16th is still the 15th in UTC
	assert.Equal(t, "2024-06-15", kernel.DateOf(time.Date(2024, 6, 16, 2, 0, 0, 0, ist)).String())
}

func TestParseDate(t *testing.T) {
	d, err := kernel.ParseDate("2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, kernel.NewDate(2024, time.June, 30), d)

	_, err = kernel.ParseDate("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.ParseDate("30/06/2024")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDate_Ordering(t *testing.T) {
	june1 := kernel.NewDate(2024, time.June, 1)
	june2 := june1.AddDays(1)

	assert.True(t, june1.Before(june2))
	assert.True(t, june2.After(june1))
	assert.False(t, june1.After(june1))
	assert.Equal(t, "2024-06-02", june2.String())
}

func TestDate_Zero(t *testing.T) {
	var d kernel.Date
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())
	assert.True(t, kernel.DateOf(time.Time{}).IsZero())
	assert.Nil(t, kernel.DatePtr(nil))
}
