package simulator

import (
	"math"
	"math/rand/v2"

	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// 统计第 t-1 个时段处于潜伏期的人在第 t 个时段各团队中的人数
// counts[k] 为团队 k 的传染人数，在家的人不计入
// 必须在写入第 t 个时段的任何状态之前调用
func teamCountsInfectious(grid *domain.HealthGrid, a *domain.Assignment, t int, counts map[int]int) {
	clear(counts)
	for i := 0; i < grid.Crew(); i++ {
		if label := a.At(i, t); label != domain.LabelHome && grid.At(i, t-1).Infectious() {
			counts[label]++
		}
	}
}

func (s *Simulator) workRate(team int) float64 {
	if rate, ok := s.parameters.TeamWorkRates[team]; ok {
		return rate
	}
	return s.parameters.InfRateWork
}

// 工作场所感染：每个同队的传染者独立地以 rate/24*HoursPerSlot 的概率传染
func (s *Simulator) infectWork(rng *rand.Rand, team int, count int) bool {
	if count == 0 {
		return false
	}
	escape := math.Pow(1-s.workRate(team)/24*s.parameters.HoursPerSlot, float64(count))
	return rng.Float64() < 1-escape
}

// 在家感染
func (s *Simulator) infectHome(rng *rand.Rand) bool {
	return rng.Float64() < s.parameters.InfRateHome*s.parameters.HoursPerSlot/24
}

// 潜伏期服从对数正态分布（以 IncubationUnitHours 小时为单位）
func (s *Simulator) incubationTime(rng *rand.Rand) float64 {
	p := s.parameters
	dist := distuv.LogNormal{
		Mu:    p.IncubationMu,
		Sigma: p.IncubationSigma,
		Src:   rng,
	}
	return p.IncubationUnitHours * dist.Rand()
}

// 根据第 t-1 个时段的状态计算第 i 个人在第 t 个时段的状态
// 潜伏期剩余时间扣减到 <= 0 的当个时段即记为有症状，不保留负数的剩余时间，
// 因此有症状人数曲线比逐时段钳制为 0 的写法早一个时段
func (s *Simulator) next(rng *rand.Rand, prev domain.HealthState, label int, counts map[int]int) domain.HealthState {
	switch prev.Status {
	case domain.Healthy:
		var infected bool
		if label == domain.LabelHome {
			infected = s.infectHome(rng)
		} else {
			infected = s.infectWork(rng, label, counts[label])
		}
		if infected {
			return domain.LatentState(s.incubationTime(rng))
		}
		return domain.HealthyState()
	case domain.Latent:
		remaining := prev.RemainingHours - s.parameters.HoursPerSlot
		if remaining <= 0 {
			return domain.SymptomaticState()
		}
		return domain.LatentState(remaining)
	default:
		// 出现症状之后不再变化
		return domain.SymptomaticState()
	}
}
