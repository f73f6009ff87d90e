package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wok10-dev/shift-planner/backend/internal/config"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/grid"
	"github.com/wok10-dev/shift-planner/backend/internal/seed"
	"github.com/wok10-dev/shift-planner/backend/internal/utils"
)

func main() {
	var op int
	var n int
	var week int
	var year int
	var output string

	flag.IntVar(&op, "op", 0, "operation to run (1: fixed sample planning, 2: random planning)")
	flag.IntVar(&n, "n", 5, "number of employees for a random planning")
	flag.IntVar(&week, "week", 0, "week number of a random planning (0: next week)")
	flag.IntVar(&year, "year", 0, "year of a random planning (0: next week's year)")
	flag.StringVar(&output, "o", "", "output workbook path (default: sample_planning.xlsx in the template directory)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if output == "" {
		output = filepath.Join(cfg.Storage.TemplateDir, "sample_planning.xlsx")
	}

	var planning *domain.WeekPlanning
	switch op {
	case 0:
		logger.Error("no operation given")
		os.Exit(1)
	case 1:
		planning = seed.SamplePlanning()
	case 2:
		if n <= 0 {
			logger.Error("employee count must be positive", slog.Int("n", n))
			os.Exit(1)
		}
		planning = utils.GenerateRandomPlanning(n, week, year)
	default:
		logger.Error("unknown operation", slog.Int("op", op))
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		logger.Error("cannot create output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	codec := grid.New(grid.WithRestaurantName(cfg.Planning.RestaurantName))
	if err := codec.EncodeFile(output, planning); err != nil {
		logger.Error("cannot write workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("workbook written", slog.String("path", output), slog.Int("employees", len(planning.Employees)))
	for _, e := range planning.Employees {
		logger.Info("employee", slog.String("name", e.Name), slog.Float64("hours", e.WeeklyHours()), slog.Int("meals", e.WeeklyMeals()))
	}
}
