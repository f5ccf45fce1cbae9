package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"stride/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadObservations(t *testing.T) {
	path := writeTempCSV(t, "steps,date,interval\n"+
		"NA,2012-10-01,0\n"+
		"117,2012-10-02,2355\n"+
		"0,2012-10-02,5\n")

	obs, err := NewReader(path).ReadObservations()
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.False(t, obs[0].Steps.Valid, "NA must parse as missing")
	assert.Equal(t, "2012-10-01", obs[0].Date.String())
	assert.Equal(t, "00:00", obs[0].Interval.String())

	assert.True(t, obs[1].Steps.Valid)
	assert.Equal(t, 117.0, obs[1].Steps.Value)
	assert.Equal(t, "23:55", obs[1].Interval.String())

	// Zero steps is a value, not a missing marker
	assert.True(t, obs[2].Steps.Valid)
	assert.Equal(t, 0.0, obs[2].Steps.Value)
}

func TestReadObservations_ColumnOrderIrrelevant(t *testing.T) {
	path := writeTempCSV(t, "date,interval,steps\n"+
		"2012-10-06,835,42\n")

	obs, err := NewReader(path).ReadObservations()
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, 42.0, obs[0].Steps.Value)
	assert.Equal(t, "08:35", obs[0].Interval.String())
}

func TestReadObservations_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "steps,date\n1,2012-10-01\n")

	_, err := NewReader(path).ReadObservations()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingColumn)
}

func TestReadObservations_MalformedRows(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad date", "steps,date,interval\n1,10/01/2012,0\n"},
		{"bad interval code", "steps,date,interval\n1,2012-10-01,2400\n"},
		{"bad steps", "steps,date,interval\nabc,2012-10-01,0\n"},
		{"negative steps", "steps,date,interval\n-4,2012-10-01,0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, tc.body)
			_, err := NewReader(path).ReadObservations()
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrMalformedRow)
		})
	}
}

func TestReadObservations_FileAbsent(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).ReadObservations()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
}

func TestReadObservations_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "steps,date,interval\n")
	_, err := NewReader(path).ReadObservations()
	require.Error(t, err)
}
