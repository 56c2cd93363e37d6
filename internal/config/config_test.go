package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2.0, cfg.HoursPerDay)
	require.Len(t, cfg.AppBlocks, 2)
	assert.Equal(t, "light", cfg.DayTypes["Wednesday"])
}

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hearthplan", "config.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_ParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
hours_per_day: 3
app_blocks:
  - label: Typing club
    minutes: 20
day_types:
  Friday: appointment
subject_aliases:
  mathe: math
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.HoursPerDay)
	assert.Equal(t, "math", cfg.SubjectAliases["mathe"])

	blocks := cfg.DomainAppBlocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.AppBlock{Label: "Typing club", DefaultMinutes: 20}, blocks[0])
}

func TestLoad_FallsBackOnZeroHours(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nhours_per_day: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.HoursPerDay)
}

func TestDomainDayTypes(t *testing.T) {
	cfg := Config{DayTypes: map[string]string{
		"Wednesday": "light",
		"Friday":    "appointment",
		"Sunday":    "light",  // not a plan day: ignored
		"Monday":    "siesta", // unknown type: normal
	}}
	types := cfg.DomainDayTypes()
	require.Len(t, types, 5)
	assert.Equal(t, domain.DayNormal, types[0].DayType)
	assert.Equal(t, domain.DayLight, types[2].DayType)
	assert.Equal(t, domain.DayAppointment, types[4].DayType)
}
