package montecarlo

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
	"github.com/sysu-ecnc-dev/shift-sim/internal/simulator"
	"github.com/sysu-ecnc-dev/shift-sim/internal/utils"
	"golang.org/x/sync/errgroup"
)

type Driver struct {
	simulator  *simulator.Simulator
	parameters Parameters
	logger     *slog.Logger
}

type Option func(*Driver)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

func New(sim *simulator.Simulator, parameters Parameters, opts ...Option) (*Driver, error) {
	if sim == nil {
		return nil, fmt.Errorf("%w: simulator 不能为空", domain.ErrInvalidParameter)
	}
	if err := utils.ValidateParameters(parameters); err != nil {
		return nil, err
	}
	if parameters.Workers == 0 {
		parameters.Workers = runtime.GOMAXPROCS(0)
	}

	d := &Driver{
		simulator:  sim,
		parameters: parameters,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Iterate 在同一个排班矩阵上独立地模拟 Iterations 次
// 每次模拟拥有自己的随机数生成器和健康状态矩阵，各 worker 之间只共享只读的排班矩阵
// 任意一次模拟失败或 ctx 被取消时，整批结果作废
func (d *Driver) Iterate(ctx context.Context, a *domain.Assignment) (*Result, error) {
	// 先校验一次，避免每个 worker 都返回同样的错误
	if err := d.simulator.Validate(a); err != nil {
		return nil, err
	}

	n := d.parameters.Iterations
	result := &Result{
		Infected: make([]int, n),
		Working:  make([]int, n),
	}

	d.logger.Info("开始蒙特卡洛模拟",
		slog.Int("iterations", n),
		slog.Int("workers", d.parameters.Workers),
		slog.Int("crew", a.Crew()),
		slog.Int("slots", a.Slots()),
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parameters.Workers)

	for run := 0; run < n; run++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			rng := utils.NewRunRand(d.parameters.Seed, d.parameters.Seeded, run)
			grid, err := d.simulator.Run(gctx, a, rng)
			if err != nil {
				return fmt.Errorf("第 %d 次模拟失败: %w", run, err)
			}

			// 每个 run 只写自己的下标
			result.Infected[run] = grid.FinalInfected()
			result.Working[run] = grid.WorkingInfected(a)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		d.logger.Error("蒙特卡洛模拟失败", slog.String("error", err.Error()))
		return nil, err
	}
	// 循环可能因为 ctx 被取消而提前退出，而已经启动的模拟都成功了
	if err := ctx.Err(); err != nil {
		d.logger.Error("蒙特卡洛模拟被取消", slog.String("error", err.Error()))
		return nil, err
	}

	d.logger.Info("蒙特卡洛模拟完成",
		slog.Int("iterations", n),
		slog.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
