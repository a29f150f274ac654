package worker

import (
	"context"
	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	activityService "hotelops/internal/domains/activity/service"
	taskService "hotelops/internal/domains/task/service"
	"hotelops/shared/constant"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"hotelops/shared/logger"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	defaultSweepInterval = 30 * time.Second
	activityGroupSuffix  = "-activity"
)

// Worker runs the overdue task sweep and records consumed domain events as activities.
type Worker struct {
	config     *config.Config
	tasks      taskService.Task
	activities activityService.Activity
	kafka      kafka.Client
	otel       otel.Otel
	log        zerolog.Logger
}

func New(cfg *config.Config, tasks taskService.Task, activities activityService.Activity, client kafka.Client, otel otel.Otel) *Worker {
	return &Worker{
		config:     cfg,
		tasks:      tasks,
		activities: activities,
		kafka:      client,
		otel:       otel,
		log:        logger.Component("worker"),
	}
}

// Serve blocks until SIGINT/SIGTERM.
func (w *Worker) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Run(ctx)

	if err := w.kafka.Close(); err != nil {
		w.log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	w.log.Info().Msg("Worker stopped.")
}

// Run starts the sweep and, with Kafka enabled, the activity consumer. It returns once both have
// stopped after ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		w.sweep(ctx)
	}()

	if w.config.Kafka.Enable {
		wg.Add(1)

		go func() {
			defer wg.Done()

			w.kafka.Consume(ctx, w.config.Kafka.ConsumerGroup+activityGroupSuffix, w.config.Kafka.EventTopic, w.HandleEvent)
		}()
	} else {
		w.log.Warn().Msg("Kafka disabled, activity consumer not started")
	}

	wg.Wait()
}

func (w *Worker) interval() time.Duration {
	if w.config.Worker.TaskSweepIntervalSeconds <= 0 {
		return defaultSweepInterval
	}

	return time.Duration(w.config.Worker.TaskSweepIntervalSeconds) * time.Second
}

// sweep marks overdue tasks once at start and then on every tick.
func (w *Worker) sweep(ctx context.Context) {
	interval := w.interval()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", interval).Msg("Overdue task sweep started")

	w.markOverdue(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Overdue task sweep stopped")

			return
		case <-ticker.C:
			w.markOverdue(ctx)
		}
	}
}

func (w *Worker) markOverdue(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".markOverdue")
	defer scope.End()

	count, err := w.tasks.MarkOverdue(ctx)
	if err != nil {
		scope.TraceError(err)
		w.log.Error().Err(err).Msg("overdue task sweep failed")

		return
	}

	if count > 0 {
		w.log.Info().Int64("count", count).Msg("overdue task sweep finished")
	}
}

// HandleEvent decodes one event message and stores it as an activity. Messages that can never
// be stored are reported as permanent so the consumer skips them; store failures are retried.
func (w *Worker) HandleEvent(ctx context.Context, msg kafkaGo.Message) error {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".HandleEvent")
	defer scope.End()

	evt, err := kafka.DecodeKafkaMessage[event.Event](msg)
	if err != nil {
		scope.TraceError(err)

		return kafka.Permanent(err)
	}

	if err = w.activities.Record(ctx, evt); err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusBadRequest {
			return kafka.Permanent(err)
		}

		return err
	}

	return nil
}
