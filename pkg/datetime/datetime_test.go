package datetime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"date only", "2025-03-31", NewDate(2025, time.March, 31), false},
		{"rfc3339", "2025-03-31T10:00:00Z", NewDate(2025, time.March, 31), false},
		{"rfc3339 with offset crosses day", "2025-03-31T23:30:00-02:00", NewDate(2025, time.April, 1), false},
		{"naive iso with micros", "2025-03-31T10:00:00.123456", NewDate(2025, time.March, 31), false},
		{"naive space separated", "2025-03-31 10:00:00", NewDate(2025, time.March, 31), false},
		{"padded", "  2025-03-31 ", NewDate(2025, time.March, 31), false},
		{"empty", "", Date{}, true},
		{"garbage", "next tuesday", Date{}, true},
		{"wrong order", "31/03/2025", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexible(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnrecognizedDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
		})
	}
}

func TestDate_Display(t *testing.T) {
	assert.Equal(t, "Mar 31, 2025", NewDate(2025, time.March, 31).Display())
	assert.Equal(t, "", Date{}.Display())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	_, err = ParseDate("15-01-2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T08:00:00Z"`), &d))
	assert.Equal(t, "2024-06-01", d.String())

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())
}
