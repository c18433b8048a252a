package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Khoavu1110/CS3502-Project-2/config"
	"github.com/Khoavu1110/CS3502-Project-2/internal/generator"
	"github.com/Khoavu1110/CS3502-Project-2/internal/requests"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts every handler under router.
func Register(router fiber.Router, handler SchedulerHandler) {
	router.Post("/fcfs", handler.FirstComeFirstServe)
	router.Post("/hrrn", handler.HighestResponseRatioNext)
	router.Post("/sjf", handler.ShortestJobFirst)
	router.Post("/srtf", handler.ShortestRemainingTimeFirst)
	router.Post("/rr", handler.RoundRobin)
	router.Post("/mlfq", handler.MultilevelFeedbackQueue)
	router.Post("/all", handler.AllAlgorithms)
	router.Get("/generate", handler.Generate)
	router.Get("/simulate", handler.Simulate)
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errors.New("invalid request format")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	return s.scheduleWith(ctx, algorithm, s.config.Scheduling)
}

func (s *SchedulerHandlerImpl) scheduleWith(ctx *fiber.Ctx, algorithm schedulers.Algorithm, opts schedulers.Options) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err := opts.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}
	response, err := schedulers.RunWith(algorithm, request.Processes(), opts)
	if err != nil {
		log.Println(algorithm, "can not process request:", err)
		return badRequest(ctx, "can not process request")
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.HighestResponseRatioNext)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

// RoundRobin accepts an optional quantum query parameter.
func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	opts := s.config.Scheduling
	opts.RoundRobinTimeQuantum = ctx.QueryInt("quantum", opts.RoundRobinTimeQuantum)
	return s.scheduleWith(ctx, schedulers.RoundRobin, opts)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	results, err := schedulers.RunAll(request.Processes())
	if err != nil {
		log.Println("can not process request:", err)
		return badRequest(ctx, "can not process request")
	}
	return ctx.JSON(responses.AllResponse{Results: results})
}

// generatorOptions starts from the configured options and applies the
// count and seed query parameters.
func (s *SchedulerHandlerImpl) generatorOptions(ctx *fiber.Ctx) (generator.Options, error) {
	opts := s.config.Generator
	opts.Count = ctx.QueryInt("count", opts.Count)
	if seed := ctx.QueryInt("seed", 0); seed != 0 {
		opts.Seed = int64(seed)
	}
	return opts, opts.Validate()
}

func (s *SchedulerHandlerImpl) Generate(ctx *fiber.Ctx) error {
	opts, err := s.generatorOptions(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	processes, err := generator.Generate(opts)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(requests.FromProcesses(processes))
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	opts, err := s.generatorOptions(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	processes, err := generator.Generate(opts)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	results, err := schedulers.RunAll(processes)
	if err != nil {
		log.Println("can not process request:", err)
		return badRequest(ctx, "can not process request")
	}
	return ctx.JSON(fiber.Map{
		"jobs":    requests.FromProcesses(processes).Jobs,
		"results": results,
	})
}
