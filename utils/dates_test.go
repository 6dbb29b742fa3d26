package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWireDate(t *testing.T) {
	got, err := ParseWireDate("25/12/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseWireDate(" 5/1/2025 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseWireDate_IndependentOfLocalZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })
	time.Local = time.FixedZone("UTC+14", 14*60*60)

	got, err := ParseWireDate("25/12/2024")
	require.NoError(t, err)
	assert.Equal(t, "25/12/2024", FormatWireDate(got))
	assert.Equal(t, "2024-12-25T00:00:00Z", got.Format(time.RFC3339))
}

func TestParseWireDate_Rejects(t *testing.T) {
	for _, in := range []string{"", "2024-12-25", "31/02/2024", "00/01/2024", "12/13/2024", "aa/bb/cccc", "1/1/24", "25/12/2024/1"} {
		_, err := ParseWireDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormDateToWire(t *testing.T) {
	got, err := FormDateToWire("2024-12-25")
	require.NoError(t, err)
	assert.Equal(t, "25/12/2024", got)

	_, err = FormDateToWire("25/12/2024")
	assert.Error(t, err)
	_, err = FormDateToWire("2024-02-30")
	assert.Error(t, err)
}
