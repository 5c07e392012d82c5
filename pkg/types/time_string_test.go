package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "single digit hour normalized", input: "9:30", want: "09:30"},
		{name: "postgres time with seconds", input: "18:00:00", want: "18:00"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("12:00").IsAfter("11:59"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
	assert.Equal(t, 24*60, TimeString("23:00").EndMinutes(60))
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, loc)

	got := TimeString("14:30").On(date)

	assert.Equal(t, time.Date(2026, 10, 19, 14, 30, 0, 0, loc), got)
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("10:15:00")))
	assert.Equal(t, TimeString("10:15"), ts)

	value, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:15:00", value)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
