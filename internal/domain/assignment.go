package domain

import (
	"fmt"
	"slices"
)

// LabelHome 表示该时段在家，其余正数标签表示所在的团队
const LabelHome = 0

// Assignment: 排班矩阵，Assignment.At(i, t) 为第 i 个人在第 t 个时段所在的团队
// 创建之后不可修改，可以在多次模拟之间只读共享
type Assignment struct {
	crew   int
	slots  int
	labels []int // 按行存储，长度为 crew * slots
}

// NewAssignment 根据二维数组创建排班矩阵，rows[i][t] 为第 i 个人在第 t 个时段的团队标签
func NewAssignment(rows [][]int) (*Assignment, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: 人数必须大于 0", ErrShapeMismatch)
	}
	slots := len(rows[0])
	if slots == 0 {
		return nil, fmt.Errorf("%w: 时段数必须大于 0", ErrShapeMismatch)
	}

	labels := make([]int, 0, len(rows)*slots)
	for i, row := range rows {
		if len(row) != slots {
			return nil, fmt.Errorf("%w: 第 %d 行有 %d 个时段，应为 %d 个", ErrShapeMismatch, i, len(row), slots)
		}
		for t, label := range row {
			if label < LabelHome {
				return nil, fmt.Errorf("%w: (%d, %d) 的团队标签 %d 为负数", ErrShapeMismatch, i, t, label)
			}
		}
		labels = append(labels, row...)
	}

	return &Assignment{
		crew:   len(rows),
		slots:  slots,
		labels: labels,
	}, nil
}

func (a *Assignment) Crew() int  { return a.crew }
func (a *Assignment) Slots() int { return a.slots }

func (a *Assignment) At(i, t int) int {
	return a.labels[i*a.slots+t]
}

// Row 返回第 i 个人的排班副本
func (a *Assignment) Row(i int) []int {
	row := make([]int, a.slots)
	copy(row, a.labels[i*a.slots:(i+1)*a.slots])
	return row
}

// Teams 返回矩阵中出现过的所有团队标签（不含在家），按从小到大排列
// 标签可能很稀疏，因此不按最大标签分配空间
func (a *Assignment) Teams() []int {
	seen := make(map[int]bool)
	teams := []int{}
	for _, label := range a.labels {
		if label == LabelHome || seen[label] {
			continue
		}
		seen[label] = true
		teams = append(teams, label)
	}
	slices.Sort(teams)
	return teams
}
