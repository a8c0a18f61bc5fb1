package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString_WithSeconds(t *testing.T) {
	// TIME колонки PostgreSQL приходят как "HH:MM:SS"
	ts, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"", "9:30", "abc", "10:70", "10-30", "25:00"}
	for _, input := range cases {
		_, err := NewTimeStringFromString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNewTimeStringFromString_MidnightBoundary(t *testing.T) {
	// "24:00" допустимо как исключительная граница интервала
	ts, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, ts.Minutes())

	_, err = NewTimeStringFromString("24:01")
	assert.Error(t, err)
}

func TestNewTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 2, 15, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, ts.Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "11:15", result.String())
}

func TestTimeString_AddMinutes_CrossesDayBoundary(t *testing.T) {
	ts, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	_, err = ts.AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_AddMinutes_ToExactMidnight(t *testing.T) {
	ts, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)

	result, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "24:00", result.String())
}

func TestTimeString_Comparison(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("17:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_Value(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	value, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", value)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("11:45:00"))
	assert.Equal(t, "11:45", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2024, 2, 15, 16, 20, 0, 0, time.UTC)))
	assert.Equal(t, "16:20", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
