package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"2023-02-29", "2024-2-1", "29/02/2024", "2024-02-29T00:00:00Z", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOf_UsesTheTimesOwnZone(t *testing.T) {
	instant := time.Date(2024, time.June, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.June, 15), DateOf(instant))
	assert.Equal(t, NewDate(2024, time.June, 14), DateOf(instant.In(time.FixedZone("UTC-5", -5*3600))))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 31)
	b := NewDate(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, b, a.AddDays(1))
	assert.Equal(t, NewDate(2023, time.December, 31), NewDate(2024, time.January, 1).AddDays(-1))
}

func TestNewDate_Normalises(t *testing.T) {
	assert.Equal(t, NewDate(2023, time.March, 2), NewDate(2023, time.February, 30))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due  Date `json:"due"`
		Paid Date `json:"paid"`
	}

	out, err := json.Marshal(payload{Due: NewDate(2024, time.July, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-07-04","paid":null}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-07-04","paid":null}`), &in))
	assert.Equal(t, NewDate(2024, time.July, 4), in.Due)
	assert.True(t, in.Paid.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"due":"07/04/2024"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"due":20240704}`), &in))
}
