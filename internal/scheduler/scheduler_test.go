package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
)

func TestTwoTeamsPeriodic_SmallScenario(t *testing.T) {
	// 列数为 Period*Periods，因此 Team=2, Period=1, Periods=2 只有 2 列
	a, err := TwoTeamsPeriodic(Parameters{Team: 2, Period: 1, Periods: 2})
	require.NoError(t, err)

	require.Equal(t, 4, a.Crew())
	require.Equal(t, 2, a.Slots())

	want := [][]int{
		{0, 1},
		{0, 1},
		{1, 0},
		{1, 0},
	}
	for i, row := range want {
		assert.Equal(t, row, a.Row(i), "row %d", i)
	}
}

func TestTwoTeamsPeriodic_SmallScenarioFourSlots(t *testing.T) {
	a, err := TwoTeamsPeriodic(Parameters{Team: 2, Period: 1, Periods: 4})
	require.NoError(t, err)

	require.Equal(t, 4, a.Crew())
	require.Equal(t, 4, a.Slots())

	want := [][]int{
		{0, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{1, 0, 1, 0},
	}
	for i, row := range want {
		assert.Equal(t, row, a.Row(i), "row %d", i)
	}
}

func TestTwoTeamsPeriodic_ShapeAndLabels(t *testing.T) {
	cases := []Parameters{
		{Team: 1, Period: 1, Periods: 1},
		{Team: 3, Period: 2, Periods: 5},
		{Team: 15, Period: 2, Periods: 30},
		{Team: 7, Period: 5, Periods: 3},
	}

	for _, p := range cases {
		a, err := TwoTeamsPeriodic(p)
		require.NoError(t, err)
		require.Equal(t, 2*p.Team, a.Crew())
		require.Equal(t, p.Period*p.Periods, a.Slots())

		for i := 0; i < a.Crew(); i++ {
			for j := 0; j < a.Slots(); j++ {
				label := a.At(i, j)
				require.Contains(t, []int{0, 1}, label)
				require.Equal(t, (i/p.Team+j/p.Period)%2, label)
			}
		}
	}
}

func TestTwoTeamsPeriodic_Periodicity(t *testing.T) {
	p := Parameters{Team: 4, Period: 3, Periods: 8}
	a, err := TwoTeamsPeriodic(p)
	require.NoError(t, err)

	for i := 0; i < a.Crew(); i++ {
		for j := 0; j+2*p.Period < a.Slots(); j++ {
			assert.Equal(t, a.At(i, j), a.At(i, j+2*p.Period))
		}
		// 每 Period 个时段切换一次
		for j := 0; j+p.Period < a.Slots(); j++ {
			assert.NotEqual(t, a.At(i, j), a.At(i, j+p.Period))
		}
	}
}

func TestTwoTeamsPeriodic_OneTeamOnDuty(t *testing.T) {
	p := Parameters{Team: 5, Period: 2, Periods: 4}
	a, err := TwoTeamsPeriodic(p)
	require.NoError(t, err)

	for j := 0; j < a.Slots(); j++ {
		onDuty := 0
		for i := 0; i < a.Crew(); i++ {
			onDuty += a.At(i, j)
		}
		assert.Equal(t, p.Team, onDuty, "slot %d", j)
	}
}

func TestTwoTeamsPeriodic_Deterministic(t *testing.T) {
	p := Parameters{Team: 6, Period: 4, Periods: 7}
	a1, err := TwoTeamsPeriodic(p)
	require.NoError(t, err)
	a2, err := TwoTeamsPeriodic(p)
	require.NoError(t, err)

	for i := 0; i < a1.Crew(); i++ {
		assert.Equal(t, a1.Row(i), a2.Row(i))
	}
}

func TestTwoTeamsPeriodic_RejectsNonPositive(t *testing.T) {
	cases := []Parameters{
		{Team: 0, Period: 1, Periods: 1},
		{Team: 1, Period: 0, Periods: 1},
		{Team: 1, Period: 1, Periods: 0},
		{Team: -2, Period: 1, Periods: 1},
		{Team: 1, Period: -1, Periods: 1},
	}

	for _, p := range cases {
		a, err := TwoTeamsPeriodic(p)
		assert.Nil(t, a)
		assert.True(t, errors.Is(err, domain.ErrInvalidParameter), "params %+v: %v", p, err)
	}
}
