package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario 对应场景文件，只有出现在文件中的字段才会覆盖环境变量中的配置
//
// 示例：
//
//	schedule:
//	  team: 15
//	  period: 2
//	  periods: 30
//	simulation:
//	  inf_rate_work: 0.01
//	  team_work_rates:
//	    2: 0.02
//	  initial_infected: [0, 16]
//	monte_carlo:
//	  iterations: 1000
//	  seed: 42
type Scenario struct {
	Schedule struct {
		Team    *int `yaml:"team"`
		Period  *int `yaml:"period"`
		Periods *int `yaml:"periods"`
	} `yaml:"schedule"`
	Simulation struct {
		InfRateWork          *float64        `yaml:"inf_rate_work"`
		InfRateHome          *float64        `yaml:"inf_rate_home"`
		TeamWorkRates        map[int]float64 `yaml:"team_work_rates"`
		HoursPerSlot         *float64        `yaml:"hours_per_slot"`
		IncubationMu         *float64        `yaml:"incubation_mu"`
		IncubationSigma      *float64        `yaml:"incubation_sigma"`
		IncubationUnitHours  *float64        `yaml:"incubation_unit_hours"`
		InitialInfected      []int           `yaml:"initial_infected"`
		InitialInfectedCount *int            `yaml:"initial_infected_count"`
	} `yaml:"simulation"`
	MonteCarlo struct {
		Iterations *int    `yaml:"iterations"`
		Workers    *int    `yaml:"workers"`
		Seed       *uint64 `yaml:"seed"`
	} `yaml:"monte_carlo"`
}

// ApplyScenarioFile 读取场景文件并覆盖到当前配置上
func (c *Config) ApplyScenarioFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("无法读取场景文件 %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("无法解析场景文件 %s: %w", path, err)
	}

	c.ApplyScenario(&sc)
	return nil
}

func (c *Config) ApplyScenario(sc *Scenario) {
	setIfPresent(&c.Schedule.Team, sc.Schedule.Team)
	setIfPresent(&c.Schedule.Period, sc.Schedule.Period)
	setIfPresent(&c.Schedule.Periods, sc.Schedule.Periods)

	setIfPresent(&c.Simulation.InfRateWork, sc.Simulation.InfRateWork)
	setIfPresent(&c.Simulation.InfRateHome, sc.Simulation.InfRateHome)
	setIfPresent(&c.Simulation.HoursPerSlot, sc.Simulation.HoursPerSlot)
	setIfPresent(&c.Simulation.IncubationMu, sc.Simulation.IncubationMu)
	setIfPresent(&c.Simulation.IncubationSigma, sc.Simulation.IncubationSigma)
	setIfPresent(&c.Simulation.IncubationUnitHours, sc.Simulation.IncubationUnitHours)
	setIfPresent(&c.Simulation.InitialInfectedCount, sc.Simulation.InitialInfectedCount)
	if sc.Simulation.TeamWorkRates != nil {
		c.Simulation.TeamWorkRates = sc.Simulation.TeamWorkRates
	}
	if sc.Simulation.InitialInfected != nil {
		c.Simulation.InitialInfected = sc.Simulation.InitialInfected
	}

	setIfPresent(&c.MonteCarlo.Iterations, sc.MonteCarlo.Iterations)
	setIfPresent(&c.MonteCarlo.Workers, sc.MonteCarlo.Workers)
	if sc.MonteCarlo.Seed != nil {
		c.MonteCarlo.Seed = *sc.MonteCarlo.Seed
		c.MonteCarlo.Seeded = true
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
