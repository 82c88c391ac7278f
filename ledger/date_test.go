package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-04")
	assert.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 4), d)
	assert.Equal(t, "2024-03-04", d.String())

	_, err = ParseDate("04/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("not a date")
	assert.Error(t, err)
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 5)
	b := NewDate(2024, time.January, 10)
	c := NewDate(2023, time.December, 31)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, c.Before(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(wrapper{Date: NewDate(2024, time.March, 4)})
	assert.NoError(t, err)
	assert.Equal(t, `{"date":"2024-03-04"}`, string(raw))

	var w wrapper
	assert.NoError(t, json.Unmarshal(raw, &w))
	assert.Equal(t, NewDate(2024, time.March, 4), w.Date)
}

func TestDate_ISOWeek(t *testing.T) {
	year, week := NewDate(2024, time.December, 30).ISOWeek()
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, week)
}
