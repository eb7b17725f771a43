package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/mondialsim/mondial/internal/app"
	"github.com/mondialsim/mondial/internal/config"
	"github.com/mondialsim/mondial/internal/dataset"
	"github.com/mondialsim/mondial/internal/montecarlo"
	"github.com/mondialsim/mondial/pkg/logger"
)

// reportRows caps the probability table at the strongest contenders.
const reportRows = 16

func main() {
	// Optional local .env; absence is not an error.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	template, err := dataset.Template()
	if err != nil {
		log.Error(ctx, "bracket template is broken", logger.Error(err))
		return
	}

	svc, err := app.New(
		app.WithTemplate(template),
		app.WithLogger(log),
		app.WithFinalCommentary(cfg.FinalCommentary),
	)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return
	}

	pool := montecarlo.NewPool(svc,
		montecarlo.WithWorkerCount(cfg.WorkerCount),
		montecarlo.WithBaseSeed(cfg.Seed),
		montecarlo.WithLogger(log),
	)

	log.Info(ctx, "running monte carlo",
		logger.Int("runs", cfg.Runs),
		logger.Int("workers", cfg.WorkerCount),
		logger.Int64("seed", cfg.Seed),
	)

	aggregate, err := pool.Run(ctx, dataset.Teams(), dataset.Groups(), nil, cfg.Runs)
	if err != nil {
		log.Error(ctx, "monte carlo failed", logger.Error(err))
		return
	}

	printReport(aggregate)
}

// printReport writes the stage-probability table for the top contenders.
func printReport(a *montecarlo.Aggregate) {
	table := a.StageTable()

	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		wi, wj := a.WinPercentage(codes[i]), a.WinPercentage(codes[j])
		if wi != wj {
			return wi > wj
		}
		return codes[i] < codes[j]
	})
	if len(codes) > reportRows {
		codes = codes[:reportRows]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprint(w, "Team")
	for _, stage := range montecarlo.Stages() {
		fmt.Fprintf(w, "\t%s", stage)
	}
	fmt.Fprintln(w, "\tWin%")

	for _, code := range codes {
		fmt.Fprint(w, code)
		for _, stage := range montecarlo.Stages() {
			fmt.Fprintf(w, "\t%.1f", table[code][stage])
		}
		fmt.Fprintf(w, "\t%.1f\n", a.WinPercentage(code))
	}
	w.Flush()

	if pair, pct, ok := a.MostLikelyFinal(); ok {
		fmt.Printf("\nMost likely final: %s (%.1f%%)\n", pair, pct)
	}
}
