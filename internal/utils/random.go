package utils

import (
	"math/rand/v2"
	"slices"
)

// NewRunRand 为第 run 次模拟创建独立的随机数生成器
// seeded 为 false 时使用随机种子，结果不可复现
func NewRunRand(seed uint64, seeded bool, run int) *rand.Rand {
	if !seeded {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, uint64(run)))
}

// 使用 Fisher-Yates 洗牌算法从 [0, n) 中随机选出 k 个不重复的编号
func GenerateRandomSubset(rng *rand.Rand, n int, k int) []int {
	k = min(max(k, 0), n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for i := 0; i < k; i++ {
		j := rng.IntN(n-i) + i
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k]
}

// PickInitialInfected 在显式指定的初始感染者之外，再从其余的人中随机选出 extra 个
// 其余的人不足 extra 个时全部选中
func PickInitialInfected(rng *rand.Rand, crew int, explicit []int, extra int) []int {
	infected := slices.Clone(explicit)

	taken := make(map[int]bool, len(explicit))
	for _, i := range explicit {
		taken[i] = true
	}
	candidates := make([]int, 0, crew)
	for i := 0; i < crew; i++ {
		if !taken[i] {
			candidates = append(candidates, i)
		}
	}

	for _, j := range GenerateRandomSubset(rng, len(candidates), extra) {
		infected = append(infected, candidates[j])
	}
	return infected
}
