package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Khoavu1110/CS3502-Project-2/api"
	"github.com/Khoavu1110/CS3502-Project-2/config"
	"github.com/Khoavu1110/CS3502-Project-2/internal/chart"
	"github.com/Khoavu1110/CS3502-Project-2/internal/generator"
	"github.com/Khoavu1110/CS3502-Project-2/internal/report"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
	"github.com/Khoavu1110/CS3502-Project-2/internal/ui"
)

func main() {
	mode := flag.String("mode", "serve", "serve, report or tui")
	count := flag.Int("count", 0, "number of processes to generate (overrides config)")
	seed := flag.Int64("seed", 0, "generator seed (overrides config)")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	if *count != 0 {
		cfg.Generator.Count = *count
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	switch *mode {
	case "serve":
		serve(cfg)
	case "report":
		if err := printReport(cfg); err != nil {
			log.Fatalln(err)
		}
	case "tui":
		if err := browse(cfg); err != nil {
			log.Printf("Error running program: %v", err)
			os.Exit(1)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func serve(cfg *config.SchedulerConfig) {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	v1 := app.Group("/api").Group("/v1")
	api.Register(v1, api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func simulate(opts generator.Options) ([]responses.ScheduleResponse, error) {
	processes, err := generator.Generate(opts)
	if err != nil {
		return nil, err
	}
	log.Println("generated processes:", processes)
	return schedulers.RunAll(processes)
}

func printReport(cfg *config.SchedulerConfig) error {
	results, err := simulate(cfg.Generator)
	if err != nil {
		return err
	}

	for _, r := range results {
		report.PrintSchedule(os.Stdout, r)
		report.PrintGantt(os.Stdout, r)
	}
	report.PrintComparison(os.Stdout, results)

	if cfg.ChartDir == "" {
		return nil
	}
	if err := chart.SaveMetricsChart(filepath.Join(cfg.ChartDir, "metrics.png"), results); err != nil {
		return err
	}
	if err := chart.SaveUtilizationChart(filepath.Join(cfg.ChartDir, "utilization.png"), results); err != nil {
		return err
	}
	for _, r := range results {
		if err := chart.SaveGanttChart(filepath.Join(cfg.ChartDir, "gantt_"+r.Algorithm+".png"), r); err != nil {
			return err
		}
	}
	log.Println("charts written to", cfg.ChartDir)
	return nil
}

func browse(cfg *config.SchedulerConfig) error {
	// keep simulator logs off the alternate screen
	log.SetOutput(io.Discard)

	results, err := simulate(cfg.Generator)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(ui.NewApp(results), tea.WithAltScreen()).Run()
	return err
}
