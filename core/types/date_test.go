package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"admin-setor/core/types"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := types.ParseDate("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	_, err = types.ParseDate("15/01/2024")
	assert.Error(t, err)

	_, err = types.ParseDate("")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d := types.NewDate(2023, time.February, 10)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2023-02-10"`, string(b))

	var out types.Date
	err = json.Unmarshal([]byte(`"2022-08-01"`), &out)
	assert.NoError(t, err)
	assert.Equal(t, "2022-08-01", out.String())

	err = json.Unmarshal([]byte(`"not-a-date"`), &out)
	assert.Error(t, err)
}

func TestDate_JSONInStruct(t *testing.T) {
	type payload struct {
		HiredOn types.Date `json:"hired_on"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"hired_on":"2021-05-12"}`), &p)
	assert.NoError(t, err)
	assert.Equal(t, "2021-05-12", p.HiredOn.String())
}

func TestDate_Scan(t *testing.T) {
	var d types.Date

	// Drivers may hand back time.Time with a timezone offset.
	err := d.Scan(time.Date(2024, time.March, 3, 23, 30, 0, 0, time.FixedZone("X", -3*3600)))
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-03", d.String())

	// SQLite stores dates as datetime strings.
	err = d.Scan("2026-02-01 00:00:00+00:00")
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-01", d.String())

	err = d.Scan([]byte("2026-02-05"))
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-05", d.String())

	err = d.Scan(42)
	assert.Error(t, err)
}
