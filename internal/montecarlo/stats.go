package montecarlo

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary: 一组模拟结果的统计量
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // 样本标准差
	Min    int
	Max    int
	P05    float64
	P50    float64
	P95    float64
}

func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	// stat.Quantile 要求输入已经排好序
	x := make([]float64, len(sorted))
	for i, v := range sorted {
		x[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		// 只有一个样本时样本标准差没有定义
		std = 0
	}

	return Summary{
		N:      len(x),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P05:    stat.Quantile(0.05, stat.LinInterp, x, nil),
		P50:    stat.Quantile(0.5, stat.LinInterp, x, nil),
		P95:    stat.Quantile(0.95, stat.LinInterp, x, nil),
	}
}
