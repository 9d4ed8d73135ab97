package scheduler

// 两队轮班参数
type Parameters struct {
	Team    int `validate:"required,min=1"` // 每队人数
	Period  int `validate:"required,min=1"` // 每次轮换持续的时段数
	Periods int `validate:"required,min=1"` // 轮换次数
}
