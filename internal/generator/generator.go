package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

var ErrInvalidOptions = errors.New("invalid generator options")

const DefaultMaxCount = 1000

type Options struct {
	Count int
	// upper bound for Count, requests above it are rejected
	MaxCount       int
	MaxArrivalTime int
	MaxBurstTime   int
	MaxPriority    int
	// zero seeds from the clock
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Count:          5,
		MaxCount:       DefaultMaxCount,
		MaxArrivalTime: 10,
		MaxBurstTime:   10,
		MaxPriority:    5,
	}
}

func (o Options) Validate() error {
	switch {
	case o.Count < 1:
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidOptions, o.Count)
	case o.Count > o.MaxCount:
		return fmt.Errorf("%w: count must be at most %d, got %d", ErrInvalidOptions, o.MaxCount, o.Count)
	case o.MaxArrivalTime < 0:
		return fmt.Errorf("%w: max arrival time must not be negative, got %d", ErrInvalidOptions, o.MaxArrivalTime)
	case o.MaxBurstTime < 1:
		return fmt.Errorf("%w: max burst time must be at least 1, got %d", ErrInvalidOptions, o.MaxBurstTime)
	case o.MaxPriority < 1:
		return fmt.Errorf("%w: max priority must be at least 1, got %d", ErrInvalidOptions, o.MaxPriority)
	case o.MaxArrivalTime > core.MaxTime || o.MaxBurstTime > core.MaxTime/o.Count ||
		o.MaxArrivalTime+o.Count*o.MaxBurstTime > core.MaxTime:
		return fmt.Errorf("%w: schedule could run past time %d", ErrInvalidOptions, core.MaxTime)
	}
	return nil
}

// Generate creates Count processes with ids 1..Count, arrival in
// [0, MaxArrivalTime], burst in [1, MaxBurstTime] and priority in
// [1, MaxPriority].
func Generate(opts Options) ([]core.Process, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	processes := make([]core.Process, 0, opts.Count)
	for id := 1; id <= opts.Count; id++ {
		processes = append(processes, core.NewProcess(
			id,
			r.Intn(opts.MaxArrivalTime+1),
			1+r.Intn(opts.MaxBurstTime),
			1+r.Intn(opts.MaxPriority),
		))
	}
	return processes, nil
}
