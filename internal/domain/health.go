package domain

type HealthStatus uint8

const (
	Healthy HealthStatus = iota
	Latent
	Symptomatic
)

func (s HealthStatus) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Latent:
		return "latent"
	case Symptomatic:
		return "symptomatic"
	default:
		return "unknown"
	}
}

// HealthState: 某人在某个时段的健康状态
// 只有 Latent 状态下 RemainingHours 才有意义，表示距离出现症状还剩多少小时
type HealthState struct {
	Status         HealthStatus
	RemainingHours float64
}

func HealthyState() HealthState {
	return HealthState{Status: Healthy}
}

func LatentState(remainingHours float64) HealthState {
	return HealthState{Status: Latent, RemainingHours: remainingHours}
}

func SymptomaticState() HealthState {
	return HealthState{Status: Symptomatic}
}

// Infected 表示已经离开健康状态（潜伏或有症状）
func (s HealthState) Infected() bool {
	return s.Status != Healthy
}

// Infectious 表示处于潜伏期，计入工作场所的传染人数
func (s HealthState) Infectious() bool {
	return s.Status == Latent
}
