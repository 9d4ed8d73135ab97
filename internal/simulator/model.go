package simulator

// 传染模型参数，创建 Simulator 之后不再修改
type Parameters struct {
	InfRateWork   float64         `validate:"min=0,max=1"` // 团队 1 的工作传染率（每 24 小时）
	InfRateHome   float64         `validate:"min=0,max=1"` // 在家的传染率（每 24 小时）
	TeamWorkRates map[int]float64 `validate:"dive,keys,min=1,endkeys,min=0,max=1"`

	HoursPerSlot float64 `validate:"gt=0"` // 每个时段的小时数

	// 潜伏期 = IncubationUnitHours * exp(IncubationMu + IncubationSigma * N(0, 1))
	IncubationMu        float64
	IncubationSigma     float64 `validate:"min=0"`
	IncubationUnitHours float64 `validate:"gt=0"`

	InitialInfected []int // 第 0 个时段就处于潜伏期的人
}

func DefaultParameters() Parameters {
	return Parameters{
		InfRateWork:         0.01,
		InfRateHome:         0.001,
		TeamWorkRates:       map[int]float64{},
		HoursPerSlot:        24,
		IncubationMu:        1.62,
		IncubationSigma:     0.418,
		IncubationUnitHours: 24,
	}
}
