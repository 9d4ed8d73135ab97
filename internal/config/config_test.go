package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Schedule.Team)
	assert.Equal(t, 2, cfg.Schedule.Period)
	assert.Equal(t, 30, cfg.Schedule.Periods)
	assert.Equal(t, 0.01, cfg.Simulation.InfRateWork)
	assert.Equal(t, 0.001, cfg.Simulation.InfRateHome)
	assert.Equal(t, 24.0, cfg.Simulation.HoursPerSlot)
	assert.Equal(t, 1.62, cfg.Simulation.IncubationMu)
	assert.Equal(t, 0.418, cfg.Simulation.IncubationSigma)
	assert.Equal(t, 1000, cfg.MonteCarlo.Iterations)
	assert.False(t, cfg.MonteCarlo.Seeded)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SCHEDULE_TEAM", "4")
	t.Setenv("SIMULATION_INF_RATE_HOME", "0")
	t.Setenv("SIMULATION_INITIAL_INFECTED", "0,3")
	t.Setenv("MONTE_CARLO_SEED", "42")
	t.Setenv("MONTE_CARLO_SEEDED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.ScheduleParameters().Team)
	assert.Equal(t, 0.0, cfg.SimulatorParameters().InfRateHome)
	assert.Equal(t, []int{0, 3}, cfg.SimulatorParameters().InitialInfected)

	mp := cfg.MonteCarloParameters()
	assert.Equal(t, uint64(42), mp.Seed)
	assert.True(t, mp.Seeded)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("SCHEDULE_TEAM", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ScenarioFile(t *testing.T) {
	scenarioYAML := strings.TrimSpace(`
schedule:
  team: 3
  periods: 10
simulation:
  inf_rate_work: 0.05
  team_work_rates:
    2: 0.02
  initial_infected: [1, 4]
monte_carlo:
  iterations: 20
  seed: 7
`)
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))
	t.Setenv("SCENARIO_FILE", path)
	t.Setenv("SCHEDULE_PERIOD", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Schedule.Team)
	assert.Equal(t, 5, cfg.Schedule.Period) // 场景文件中没有的字段保留环境变量的值
	assert.Equal(t, 10, cfg.Schedule.Periods)
	assert.Equal(t, 0.05, cfg.Simulation.InfRateWork)
	assert.Equal(t, 0.001, cfg.Simulation.InfRateHome)
	assert.Equal(t, map[int]float64{2: 0.02}, cfg.SimulatorParameters().TeamWorkRates)
	assert.Equal(t, []int{1, 4}, cfg.Simulation.InitialInfected)
	assert.Equal(t, 20, cfg.MonteCarlo.Iterations)
	assert.Equal(t, uint64(7), cfg.MonteCarlo.Seed)
	assert.True(t, cfg.MonteCarlo.Seeded)
}

func TestApplyScenarioFile_Errors(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Error(t, cfg.ApplyScenarioFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schedule: [1, 2"), 0644))
	assert.Error(t, cfg.ApplyScenarioFile(path))
}
