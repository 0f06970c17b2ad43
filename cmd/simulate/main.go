// Command simulate runs many headless fights with the autopilot and reports
// how the encounter behaves: which patterns it picks, when phases change and
// how long the boss lasts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"sync"

	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"golang.org/x/sync/errgroup"
)

var patterns = []boss.Pattern{boss.PatternCharge, boss.PatternProjectile, boss.PatternSummon}

type outcome int

const (
	outcomeTimeout outcome = iota
	outcomeBossDefeated
	outcomePlayerDefeated
)

func (o outcome) String() string {
	switch o {
	case outcomeBossDefeated:
		return "boss_defeated"
	case outcomePlayerDefeated:
		return "player_defeated"
	default:
		return "timeout"
	}
}

// runResult is what one fight reports back.
type runResult struct {
	Outcome  outcome
	Elapsed  float64
	Patterns map[boss.Pattern]int
	// PhaseAt holds the fight time each phase was entered, indexed by phase.
	PhaseAt map[int]float64
}

func main() {
	runs := flag.Int("runs", 200, "number of fights to simulate")
	seed := flag.Uint64("seed", 1, "base random seed")
	parallel := flag.Int("parallel", runtime.NumCPU(), "fights run at once")
	dt := flag.Float64("dt", 1.0/60, "fixed timestep in seconds")
	maxTime := flag.Float64("max", 300, "give up on a fight after this many seconds")
	arenaFile := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	playerFile := flag.String("player", "player.yaml", "player prefab in prefabs/")
	minionFile := flag.String("minions", "minions.yaml", "minion catalog prefab in prefabs/")
	logLevel := flag.String("log", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *runs <= 0 || *dt <= 0 || *maxTime <= 0 {
		logger.Error("runs, dt and max must be positive")
		os.Exit(2)
	}

	opts := arena.Options{
		Arena:   *arenaFile,
		Player:  *playerFile,
		Minions: *minionFile,
		Logger:  logger,
	}
	specs, err := arena.LoadSpecs(opts)
	if err != nil {
		logger.Error("load prefabs", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := simulate(ctx, specs, opts, simConfig{
		Runs:     *runs,
		Seed:     *seed,
		Parallel: *parallel,
		DT:       *dt,
		MaxTime:  *maxTime,
	})
	if err != nil {
		logger.Error("simulate", "err", err)
		os.Exit(1)
	}

	report(os.Stdout, specs.Boss.ID, results)
}

type simConfig struct {
	Runs     int
	Seed     uint64
	Parallel int
	DT       float64
	MaxTime  float64
}

func simulate(ctx context.Context, specs arena.Specs, opts arena.Options, cfg simConfig) ([]runResult, error) {
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		eg.SetLimit(cfg.Parallel)
	}

	var mu sync.Mutex
	results := make([]runResult, 0, cfg.Runs)
	for i := range cfg.Runs {
		eg.Go(func() error {
			res, err := runOne(ctx, specs, opts, cfg, i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, specs arena.Specs, opts arena.Options, cfg simConfig, i int) (runResult, error) {
	orbit := 1.0
	if i%2 == 1 {
		orbit = -1
	}
	opts.Rand = rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
	opts.AutoPilot = &component.AutoPilot{Range: 220, Orbit: orbit}

	a, err := arena.New(specs, opts)
	if err != nil {
		return runResult{}, err
	}

	res := runResult{
		Patterns: make(map[boss.Pattern]int),
		PhaseAt:  map[int]float64{1: 0},
	}

	var cursor uint64
	var events []ecs.Event
	for res.Elapsed < cfg.MaxTime {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}

		a.Update(cfg.DT)
		res.Elapsed += cfg.DT

		events, cursor = a.World.Events().Since(cursor)
		for _, ev := range events {
			switch ev.Type {
			case ecs.EventStateChanged:
				change, ok := ev.Data.(entity.StateChange)
				if !ok {
					continue
				}
				for _, p := range patterns {
					if change.To == p.PrepareState() {
						res.Patterns[p]++
					}
				}
			case ecs.EventPhaseChanged:
				if phase, ok := ev.Data.(int); ok {
					res.PhaseAt[phase] = res.Elapsed
				}
			case ecs.EventBossDefeated:
				res.Outcome = outcomeBossDefeated
			case ecs.EventPlayerDefeated:
				if res.Outcome == outcomeTimeout {
					res.Outcome = outcomePlayerDefeated
				}
			}
		}

		if res.Outcome != outcomeTimeout {
			break
		}
	}
	return res, nil
}

func report(out io.Writer, id string, results []runResult) {
	outcomes := make(map[outcome]int)
	patternTotals := make(map[boss.Pattern]int)
	phaseTimes := make(map[int][]float64)
	var defeatTimes []float64
	total := 0

	for _, r := range results {
		outcomes[r.Outcome]++
		for p, n := range r.Patterns {
			patternTotals[p] += n
			total += n
		}
		for phase, at := range r.PhaseAt {
			phaseTimes[phase] = append(phaseTimes[phase], at)
		}
		if r.Outcome == outcomeBossDefeated {
			defeatTimes = append(defeatTimes, r.Elapsed)
		}
	}

	fmt.Fprintf(out, "boss %s, %d fights\n", id, len(results))
	for _, o := range []outcome{outcomeBossDefeated, outcomePlayerDefeated, outcomeTimeout} {
		fmt.Fprintf(out, "  %-16s %5d  %5.1f%%\n", o, outcomes[o], percent(outcomes[o], len(results)))
	}

	fmt.Fprintln(out, "patterns")
	for _, p := range patterns {
		fmt.Fprintf(out, "  %-16s %5d  %5.1f%%\n", p, patternTotals[p], percent(patternTotals[p], total))
	}

	fmt.Fprintln(out, "phase entered at (s)")
	phases := make([]int, 0, len(phaseTimes))
	for phase := range phaseTimes {
		phases = append(phases, phase)
	}
	slices.Sort(phases)
	for _, phase := range phases {
		s := summarize(phaseTimes[phase])
		fmt.Fprintf(out, "  phase %-10d n=%-4d min %7.2f  p50 %7.2f  max %7.2f\n", phase, s.n, s.min, s.p50, s.max)
	}

	fmt.Fprintln(out, "time to defeat (s)")
	if len(defeatTimes) == 0 {
		fmt.Fprintln(out, "  boss never defeated")
		return
	}
	s := summarize(defeatTimes)
	fmt.Fprintf(out, "  n=%d  min %.2f  p50 %.2f  p90 %.2f  max %.2f  mean %.2f\n", s.n, s.min, s.p50, s.p90, s.max, s.mean)
}

type summary struct {
	n                        int
	min, p50, p90, max, mean float64
}

func summarize(values []float64) summary {
	if len(values) == 0 {
		return summary{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	at := func(q float64) float64 {
		return sorted[int(q*float64(len(sorted)-1))]
	}
	return summary{
		n:    len(sorted),
		min:  sorted[0],
		p50:  at(0.5),
		p90:  at(0.9),
		max:  sorted[len(sorted)-1],
		mean: sum / float64(len(sorted)),
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
