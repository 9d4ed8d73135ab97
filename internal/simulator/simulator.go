package simulator

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
	"github.com/sysu-ecnc-dev/shift-sim/internal/utils"
)

type Simulator struct {
	parameters Parameters
}

func New(parameters Parameters) (*Simulator, error) {
	if err := utils.ValidateParameters(parameters); err != nil {
		return nil, err
	}
	if parameters.InfRateWork/24*parameters.HoursPerSlot > 1 || parameters.InfRateHome*parameters.HoursPerSlot/24 > 1 {
		return nil, fmt.Errorf("%w: 每个时段的感染概率不能超过 1", domain.ErrInvalidParameter)
	}
	for team, rate := range parameters.TeamWorkRates {
		if rate/24*parameters.HoursPerSlot > 1 {
			return nil, fmt.Errorf("%w: 团队 %d 每个时段的感染概率不能超过 1", domain.ErrInvalidParameter, team)
		}
	}

	// 复制一份，防止调用方之后修改 map 和切片
	parameters.TeamWorkRates = maps.Clone(parameters.TeamWorkRates)
	parameters.InitialInfected = slices.Clone(parameters.InitialInfected)

	return &Simulator{
		parameters: parameters,
	}, nil
}

func (s *Simulator) Parameters() Parameters {
	p := s.parameters
	p.TeamWorkRates = maps.Clone(p.TeamWorkRates)
	p.InitialInfected = slices.Clone(p.InitialInfected)
	return p
}

// Validate 检查排班矩阵能否用于模拟
func (s *Simulator) Validate(a *domain.Assignment) error {
	if a == nil || a.Crew() <= 0 || a.Slots() <= 0 {
		return fmt.Errorf("%w: 排班矩阵为空", domain.ErrShapeMismatch)
	}
	if err := utils.ValidateTeamRates(a, s.parameters.TeamWorkRates); err != nil {
		return err
	}
	return utils.ValidateInitialInfected(s.parameters.InitialInfected, a.Crew())
}

// Run 在排班矩阵 a 上完整地模拟一次，返回每个人在每个时段的健康状态
// 每个时段开始时检查 ctx，被取消时返回 ctx.Err()，不返回部分结果
func (s *Simulator) Run(ctx context.Context, a *domain.Assignment, rng *rand.Rand) (*domain.HealthGrid, error) {
	if err := s.Validate(a); err != nil {
		return nil, err
	}

	crew, slots := a.Crew(), a.Slots()
	grid := domain.NewHealthGrid(crew, slots)

	// 初始化：除了指定的初始感染者以外都是健康的
	for i := 0; i < crew; i++ {
		grid.Set(i, 0, domain.HealthyState())
	}
	for _, i := range s.parameters.InitialInfected {
		grid.Set(i, 0, domain.LatentState(s.incubationTime(rng)))
	}

	counts := make(map[int]int)
	for t := 1; t < slots; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 先根据上一个时段的状态统计各团队的传染人数，再更新本时段
		teamCountsInfectious(grid, a, t, counts)

		for i := 0; i < crew; i++ {
			grid.Set(i, t, s.next(rng, grid.At(i, t-1), a.At(i, t), counts))
		}
	}

	return grid, nil
}
