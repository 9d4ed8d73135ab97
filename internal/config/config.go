package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	ScenarioFile string `env:"SCENARIO_FILE"`
	Log          struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"text"` // text 或 json
	} `envPrefix:"LOG_"`
	Schedule struct {
		Team    int `env:"TEAM" envDefault:"15"`
		Period  int `env:"PERIOD" envDefault:"2"`
		Periods int `env:"PERIODS" envDefault:"30"`
	} `envPrefix:"SCHEDULE_"`
	Simulation struct {
		InfRateWork          float64         `env:"INF_RATE_WORK" envDefault:"0.01"`
		InfRateHome          float64         `env:"INF_RATE_HOME" envDefault:"0.001"`
		TeamWorkRates        map[int]float64 // 只能通过场景文件配置
		HoursPerSlot         float64         `env:"HOURS_PER_SLOT" envDefault:"24"`
		IncubationMu         float64         `env:"INCUBATION_MU" envDefault:"1.62"`
		IncubationSigma      float64         `env:"INCUBATION_SIGMA" envDefault:"0.418"`
		IncubationUnitHours  float64         `env:"INCUBATION_UNIT_HOURS" envDefault:"24"` // 对数正态分布以天为单位
		InitialInfected      []int           `env:"INITIAL_INFECTED" envSeparator:","`
		InitialInfectedCount int             `env:"INITIAL_INFECTED_COUNT" envDefault:"0"` // 随机选出的初始感染人数
	} `envPrefix:"SIMULATION_"`
	MonteCarlo struct {
		Iterations int    `env:"ITERATIONS" envDefault:"1000"`
		Workers    int    `env:"WORKERS" envDefault:"0"`
		Seed       uint64 `env:"SEED" envDefault:"0"`
		Seeded     bool   `env:"SEEDED" envDefault:"false"`
	} `envPrefix:"MONTE_CARLO_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if cfg.ScenarioFile != "" {
		if err := cfg.ApplyScenarioFile(cfg.ScenarioFile); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
