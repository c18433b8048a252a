package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/Khoavu1110/CS3502-Project-2/internal/generator"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

type SchedulerConfig struct {
	Port       int
	Generator  generator.Options
	Scheduling schedulers.Options
	ChartDir   string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// A missing file falls back to defaults, a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from the first of paths that has one. Values can be
// overridden with SCHEDULER_ prefixed environment variables, e.g.
// SCHEDULER_GENERATOR_COUNT.
func Load(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	defaults := generator.DefaultOptions()
	scheduling := schedulers.DefaultOptions()
	v.SetDefault("port", 9095)
	v.SetDefault("generator.count", defaults.Count)
	v.SetDefault("generator.max_count", defaults.MaxCount)
	v.SetDefault("generator.max_arrival_time", defaults.MaxArrivalTime)
	v.SetDefault("generator.max_burst_time", defaults.MaxBurstTime)
	v.SetDefault("generator.max_priority", defaults.MaxPriority)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("scheduler.round_robin.time_quantum", scheduling.RoundRobinTimeQuantum)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", scheduling.MultilevelFeedbackQueueLevelsTimeQuantum)
	v.SetDefault("report.chart_dir", "./charts")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config.yaml not found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port: v.GetInt("port"),
		Generator: generator.Options{
			Count:          v.GetInt("generator.count"),
			MaxCount:       v.GetInt("generator.max_count"),
			MaxArrivalTime: v.GetInt("generator.max_arrival_time"),
			MaxBurstTime:   v.GetInt("generator.max_burst_time"),
			MaxPriority:    v.GetInt("generator.max_priority"),
			Seed:           v.GetInt64("generator.seed"),
		},
		Scheduling: schedulers.Options{
			RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
			MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		},
		ChartDir: v.GetString("report.chart_dir"),
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Scheduling.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
