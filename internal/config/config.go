package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focushub/internal/schedule"
)

const (
	hubDir     = ".focushub"
	configFile = "config.yaml"

	defaultWorkMinutes  = 25
	defaultBreakMinutes = 5
)

// BonusBucket configures category score bonuses for an hour-of-day range.
// start_hour > end_hour wraps past midnight.
type BonusBucket struct {
	StartHour  int                `yaml:"start_hour"`
	EndHour    int                `yaml:"end_hour"`
	Categories map[string]float64 `yaml:"categories"`
}

// Config holds user-tunable settings.
type Config struct {
	DataFile     string        `yaml:"data_file"`
	WorkMinutes  int           `yaml:"work_minutes"`
	BreakMinutes int           `yaml:"break_minutes"`
	Bonuses      []BonusBucket `yaml:"bonuses"`
}

// Default returns the built-in configuration: classic pomodoro durations and
// the stock time-of-day bonus table (school/work mornings, chores/personal
// afternoons, health/personal evenings).
func Default() Config {
	return Config{
		WorkMinutes:  defaultWorkMinutes,
		BreakMinutes: defaultBreakMinutes,
		Bonuses: []BonusBucket{
			{StartHour: 6, EndHour: 11, Categories: map[string]float64{"School": -0.5, "Work": -0.5}},
			{StartHour: 12, EndHour: 17, Categories: map[string]float64{"Chores": -0.5, "Personal": -0.3}},
			{StartHour: 18, EndHour: 5, Categories: map[string]float64{"Health": -0.5, "Personal": -0.3}},
		},
	}
}

// DefaultPath returns the standard config location (~/.focushub/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, hubDir, configFile), nil
}

// Load reads the config at path, layering it over the defaults. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BonusTable converts the configured buckets into the scheduler's form.
func (c Config) BonusTable() schedule.BonusTable {
	table := make(schedule.BonusTable, 0, len(c.Bonuses))
	for _, b := range c.Bonuses {
		table = append(table, schedule.BonusBucket{
			Start:   b.StartHour,
			End:     b.EndHour,
			Bonuses: b.Categories,
		})
	}
	return table
}
