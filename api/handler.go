package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ShettyBro/scheduling-simulator/config"
	"github.com/ShettyBro/scheduling-simulator/internal/metrics"
	"github.com/ShettyBro/scheduling-simulator/internal/requests"
	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityScheduling(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)

func NewSchedulerHandlerImpl(cfg *config.SchedulerConfig, logger *slog.Logger, m *metrics.Metrics) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: cfg, logger: logger, metrics: m}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) PriorityScheduling(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.AlgorithmRoundRobin)
}

// AllAlgorithms runs every algorithm over the same process set and returns a
// map keyed by algorithm name. The quantum (request value or configured
// default) feeds the round-robin leg.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	for _, alg := range scheduler.Algorithms() {
		if err := request.Validate(alg); err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	response := make(map[string]requests.ScheduleResponse, len(scheduler.Algorithms()))
	for _, alg := range scheduler.Algorithms() {
		result, err := s.run(alg, request)
		if err != nil {
			s.logger.Error("simulation failed", "algorithm", alg, "error", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
		}
		response[string(alg)] = requests.NewScheduleResponse(result)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg scheduler.Algorithm) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	if err := request.Validate(alg); err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.run(alg, request)
	if err != nil {
		s.logger.Error("simulation failed", "algorithm", alg, "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	return ctx.JSON(requests.NewScheduleResponse(result))
}

// parse decodes the request body and fills in the configured default quantum
// when the caller omitted one. A false return means the response is written.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequest, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = badRequest(ctx, "invalid request format")
		return nil, false
	}
	if request.Quantum == 0 {
		request.Quantum = s.config.RoundRobinTimeQuantum
	}
	return &request, true
}

func (s *SchedulerHandlerImpl) run(alg scheduler.Algorithm, request *requests.ScheduleRequest) (*scheduler.Schedule, error) {
	processes := request.EngineInput()
	started := time.Now()

	var result *scheduler.Schedule
	var err error
	if alg == scheduler.AlgorithmPriority {
		result, err = scheduler.PriorityWithStarvationFactor(processes, s.config.StarvationFactor)
	} else {
		result, err = scheduler.Run(alg, processes, request.Quantum)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveSimulation(string(alg), time.Since(started))
	s.logger.Info("simulation served",
		"algorithm", alg,
		"processes", len(processes),
		"slices", len(result.Gantt))
	return result, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
