package domain

// HealthGrid: 一次模拟的完整结果，HealthGrid.At(i, t) 为第 i 个人在第 t 个时段的健康状态
type HealthGrid struct {
	crew   int
	slots  int
	states []HealthState
}

func NewHealthGrid(crew, slots int) *HealthGrid {
	return &HealthGrid{
		crew:   crew,
		slots:  slots,
		states: make([]HealthState, crew*slots),
	}
}

func (g *HealthGrid) Crew() int  { return g.crew }
func (g *HealthGrid) Slots() int { return g.slots }

func (g *HealthGrid) At(i, t int) HealthState {
	return g.states[i*g.slots+t]
}

func (g *HealthGrid) Set(i, t int, s HealthState) {
	g.states[i*g.slots+t] = s
}

// InfectedAt 统计第 t 个时段已经感染（潜伏或有症状）的人数
func (g *HealthGrid) InfectedAt(t int) int {
	cnt := 0
	for i := 0; i < g.crew; i++ {
		if g.At(i, t).Infected() {
			cnt++
		}
	}
	return cnt
}

// SymptomaticAt 统计第 t 个时段有症状的人数
func (g *HealthGrid) SymptomaticAt(t int) int {
	cnt := 0
	for i := 0; i < g.crew; i++ {
		if g.At(i, t).Status == Symptomatic {
			cnt++
		}
	}
	return cnt
}

// Curves 返回每个时段的感染人数和有症状人数，供调用方绘图
func (g *HealthGrid) Curves() (infected []int, symptomatic []int) {
	infected = make([]int, g.slots)
	symptomatic = make([]int, g.slots)
	for t := 0; t < g.slots; t++ {
		infected[t] = g.InfectedAt(t)
		symptomatic[t] = g.SymptomaticAt(t)
	}
	return infected, symptomatic
}

// FinalInfected 统计最后一个时段已经感染的人数
func (g *HealthGrid) FinalInfected() int {
	return g.InfectedAt(g.slots - 1)
}

// WorkingInfected 统计潜伏期内仍在上班的 (人, 时段) 数量
// 有症状的时段不计入
func (g *HealthGrid) WorkingInfected(a *Assignment) int {
	cnt := 0
	for i := 0; i < g.crew; i++ {
		for t := 0; t < g.slots; t++ {
			if g.At(i, t).Infectious() && a.At(i, t) != LabelHome {
				cnt++
			}
		}
	}
	return cnt
}
