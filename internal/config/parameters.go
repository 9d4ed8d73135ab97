package config

import (
	"github.com/sysu-ecnc-dev/shift-sim/internal/montecarlo"
	"github.com/sysu-ecnc-dev/shift-sim/internal/scheduler"
	"github.com/sysu-ecnc-dev/shift-sim/internal/simulator"
)

func (c *Config) ScheduleParameters() scheduler.Parameters {
	return scheduler.Parameters{
		Team:    c.Schedule.Team,
		Period:  c.Schedule.Period,
		Periods: c.Schedule.Periods,
	}
}

// SimulatorParameters 只包含显式指定的初始感染者，随机选出的初始感染者由调用方补充
func (c *Config) SimulatorParameters() simulator.Parameters {
	return simulator.Parameters{
		InfRateWork:         c.Simulation.InfRateWork,
		InfRateHome:         c.Simulation.InfRateHome,
		TeamWorkRates:       c.Simulation.TeamWorkRates,
		HoursPerSlot:        c.Simulation.HoursPerSlot,
		IncubationMu:        c.Simulation.IncubationMu,
		IncubationSigma:     c.Simulation.IncubationSigma,
		IncubationUnitHours: c.Simulation.IncubationUnitHours,
		InitialInfected:     c.Simulation.InitialInfected,
	}
}

func (c *Config) MonteCarloParameters() montecarlo.Parameters {
	return montecarlo.Parameters{
		Iterations: c.MonteCarlo.Iterations,
		Workers:    c.MonteCarlo.Workers,
		Seed:       c.MonteCarlo.Seed,
		Seeded:     c.MonteCarlo.Seeded,
	}
}
