package scheduler

import (
	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
	"github.com/sysu-ecnc-dev/shift-sim/internal/utils"
)

/**
 * 生成两队周期轮班的排班矩阵
 * 矩阵共 2*Team 行、Period*Periods 列，
 * 第 i 个人在第 j 个时段的标签为 (i/Team + j/Period) % 2：
 * 		1. 标签 1 表示在团队 1 上班
 * 		2. 标签 0 表示在家
 * 两队每 Period 个时段交替一次上班
 */
func TwoTeamsPeriodic(p Parameters) (*domain.Assignment, error) {
	if err := utils.ValidateParameters(p); err != nil {
		return nil, err
	}

	crew := 2 * p.Team
	slots := p.Period * p.Periods

	rows := make([][]int, crew)
	for i := 0; i < crew; i++ {
		rows[i] = make([]int, slots)
		for j := 0; j < slots; j++ {
			rows[i][j] = (i/p.Team + j/p.Period) % 2
		}
	}

	return domain.NewAssignment(rows)
}
