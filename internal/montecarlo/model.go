package montecarlo

// 蒙特卡洛迭代参数
type Parameters struct {
	Iterations int    `validate:"required,min=1"` // 模拟次数
	Workers    int    `validate:"min=0"`          // 并发数，0 表示使用 GOMAXPROCS
	Seed       uint64 // 仅在 Seeded 为 true 时使用
	Seeded     bool
}

// Result: 每次模拟的统计结果，两个切片按模拟序号对齐
type Result struct {
	Infected []int // 最后一个时段已感染的人数
	Working  []int // 潜伏期内上班的 (人, 时段) 数量
}
