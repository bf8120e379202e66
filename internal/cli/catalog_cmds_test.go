package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/unitconv/internal/units"
)

func TestCategoriesCmd(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "BASE UNIT")
	assert.True(t, strings.HasPrefix(lines[1], "length"))
	assert.True(t, strings.HasPrefix(lines[6], "speed"))
}

func TestCategoriesCmd_JSON(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "categories", "--output", "json")
	require.NoError(t, err)

	var got []categoryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 6)
	assert.Equal(t, units.CategoryTemperature, got[2].ID)
	assert.Equal(t, "c", got[2].BaseUnit)
	assert.Equal(t, 3, got[2].Units)
}

func TestUnitsCmd(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "units", "speed")
	require.NoError(t, err)
	assert.Contains(t, out, "m/s")
	assert.Contains(t, out, "Meters per Second (base)")
	assert.Contains(t, out, "Speed of Light")

	_, _, err = execute(t, "", "units", "time")
	require.ErrorIs(t, err, units.ErrCategoryNotFound)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestCommonCmd(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "common", "length")
	require.NoError(t, err)
	assert.Contains(t, out, "cm → inches")
	assert.Contains(t, out, "meters → feet")

	out, _, err = execute(t, "", "common", "length", "--value", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2 cm = 0.78740157 in")
	assert.Contains(t, out, "2 km = 1.242742 mi")
}

func TestCommonCmd_JSON(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "common", "temperature", "--value", "100", "-o", "json")
	require.NoError(t, err)

	var rows []commonJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	for _, r := range rows {
		require.NotNil(t, r.Value)
		require.NotNil(t, r.Result)
		assert.Equal(t, 100.0, *r.Value)
	}
}

func TestCommonCmd_InvalidValue(t *testing.T) {
	isolateHome(t)
	_, _, err := execute(t, "", "common", "length", "--value", "ten")
	assert.Equal(t, ExitUsage, ExitCode(err))
}
