package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sysu-ecnc-dev/shift-sim/internal/config"
	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
	"github.com/sysu-ecnc-dev/shift-sim/internal/montecarlo"
	"github.com/sysu-ecnc-dev/shift-sim/internal/scheduler"
	"github.com/sysu-ecnc-dev/shift-sim/internal/simulator"
	"github.com/sysu-ecnc-dev/shift-sim/internal/utils"
)

func main() {
	var op int
	var scenario string

	flag.IntVar(&op, "op", 3, "要执行的操作 (1: 输出排班矩阵, 2: 模拟一次并输出感染曲线, 3: 蒙特卡洛模拟)")
	flag.StringVar(&scenario, "scenario", "", "场景文件路径（覆盖 SCENARIO_FILE）")
	flag.Parse()

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("无法加载配置", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if scenario != "" {
		if err := cfg.ApplyScenarioFile(scenario); err != nil {
			slog.Error("无法加载场景文件", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 监听 CTRL+C，取消正在进行的模拟
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, op); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info("模拟已取消")
		case errors.Is(err, domain.ErrInvalidParameter), errors.Is(err, domain.ErrShapeMismatch):
			logger.Error("参数错误", slog.String("error", err.Error()))
		default:
			logger.Error("模拟失败", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(ctx context.Context, cfg *config.Config, op int) error {
	assignment, err := scheduler.TwoTeamsPeriodic(cfg.ScheduleParameters())
	if err != nil {
		return err
	}
	slog.Info("已生成排班矩阵", slog.Int("crew", assignment.Crew()), slog.Int("slots", assignment.Slots()))

	simParams := cfg.SimulatorParameters()
	simParams.InitialInfected = withRandomInitialInfected(cfg, simParams.InitialInfected, assignment.Crew())

	sim, err := simulator.New(simParams)
	if err != nil {
		return err
	}

	switch op {
	case 1:
		printAssignment(assignment)
	case 2:
		rng := utils.NewRunRand(cfg.MonteCarlo.Seed, cfg.MonteCarlo.Seeded, 0)
		grid, err := sim.Run(ctx, assignment, rng)
		if err != nil {
			return err
		}
		printCurves(grid)
	case 3:
		driver, err := montecarlo.New(sim, cfg.MonteCarloParameters())
		if err != nil {
			return err
		}
		res, err := driver.Iterate(ctx, assignment)
		if err != nil {
			return err
		}
		printSummary("infected", montecarlo.Summarize(res.Infected))
		printSummary("working", montecarlo.Summarize(res.Working))
	default:
		return fmt.Errorf("%w: 指定的操作 %d 非法", domain.ErrInvalidParameter, op)
	}

	return nil
}

// 在显式指定的初始感染者之外，再随机选出 InitialInfectedCount 个人
func withRandomInitialInfected(cfg *config.Config, explicit []int, crew int) []int {
	if cfg.Simulation.InitialInfectedCount <= 0 {
		return explicit
	}

	// 使用与各次模拟不同的随机流
	rng := utils.NewRunRand(cfg.MonteCarlo.Seed^0x5eed, cfg.MonteCarlo.Seeded, crew)
	infected := utils.PickInitialInfected(rng, crew, explicit, cfg.Simulation.InitialInfectedCount)

	slog.Info("已随机选出初始感染者", slog.Any("initial_infected", infected))
	return infected
}

func printAssignment(a *domain.Assignment) {
	for i := 0; i < a.Crew(); i++ {
		row := a.Row(i)
		cells := make([]string, len(row))
		for t, label := range row {
			cells[t] = fmt.Sprint(label)
		}
		fmt.Println(strings.Join(cells, " "))
	}
}

func printCurves(grid *domain.HealthGrid) {
	infected, symptomatic := grid.Curves()
	fmt.Println("slot\tinfected\tsymptomatic")
	for t := range infected {
		fmt.Printf("%d\t%d\t%d\n", t, infected[t], symptomatic[t])
	}
}

func printSummary(name string, s montecarlo.Summary) {
	fmt.Printf("%s\tn=%d\tmean=%.3f\tstd=%.3f\tmin=%d\tp05=%.1f\tp50=%.1f\tp95=%.1f\tmax=%d\n",
		name, s.N, s.Mean, s.StdDev, s.Min, s.P05, s.P50, s.P95, s.Max)
}
