package worker_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/kafka"
	kafkaMocks "hotelops/infras/kafka/mocks"
	otelMocks "hotelops/infras/otel/mocks"
	activityMocks "hotelops/internal/domains/activity/service/mocks"
	taskMocks "hotelops/internal/domains/task/service/mocks"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"hotelops/transport/worker"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	tasks      *taskMocks.MockTask
	activities *activityMocks.MockActivity
	kafka      *kafkaMocks.MockClient
	cfg        *config.Config
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Worker.TaskSweepIntervalSeconds = 60
	cfg.Kafka.ConsumerGroup = "hotelops"
	cfg.Kafka.EventTopic = "hotel-events"

	return fixture{
		tasks:      taskMocks.NewMockTask(ctrl),
		activities: activityMocks.NewMockActivity(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		cfg:        cfg,
	}
}

func (f fixture) worker() *worker.Worker {
	return worker.New(f.cfg, f.tasks, f.activities, f.kafka, otelMocks.NewOtel())
}

// runFor starts the worker, cancels it after d and fails if it does not stop.
func runFor(t *testing.T, w *worker.Worker, d time.Duration) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		w.Run(ctx)
	}()

	time.Sleep(d)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "worker did not stop after cancellation")
	}
}

func TestWorker_Run_SweepsOnStartAndStops(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().MarkOverdue(gomock.Any()).Return(int64(2), nil).Times(1)

	runFor(t, f.worker(), 50*time.Millisecond)
}

func TestWorker_Run_SweepsOnEveryTick(t *testing.T) {
	f := newFixture(t)
	f.cfg.Worker.TaskSweepIntervalSeconds = 1

	f.tasks.EXPECT().MarkOverdue(gomock.Any()).Return(int64(0), nil).MinTimes(2).MaxTimes(3)

	runFor(t, f.worker(), 2200*time.Millisecond)
}

func TestWorker_Run_SweepErrorKeepsRunning(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().MarkOverdue(gomock.Any()).Return(int64(0), errors.New("db down")).Times(1)

	runFor(t, f.worker(), 50*time.Millisecond)
}

func TestWorker_Run_ConsumesEventsWhenKafkaEnabled(t *testing.T) {
	f := newFixture(t)
	f.cfg.Kafka.Enable = true

	f.tasks.EXPECT().MarkOverdue(gomock.Any()).Return(int64(0), nil).AnyTimes()
	f.kafka.EXPECT().
		Consume(gomock.Any(), "hotelops-activity", "hotel-events", gomock.Any()).
		Do(func(ctx context.Context, _, _ string, _ kafka.Handler) {
			<-ctx.Done()
		}).
		Times(1)

	runFor(t, f.worker(), 50*time.Millisecond)
}

func TestWorker_HandleEvent(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		setupMock     func(f fixture)
		wantErr       bool
		wantPermanent bool
	}{
		{
			name:  "records decoded event",
			value: `{"id":"ev-1","name":"task.overdue","entity":"task","actor":"system","payload":{"count":2}}`,
			setupMock: func(f fixture) {
				f.activities.EXPECT().Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, evt event.Event) error {
						assert.Equal(t, "ev-1", evt.ID)
						assert.Equal(t, event.NameTaskOverdue, evt.Name)

						return nil
					})
			},
		},
		{
			name:          "malformed message",
			value:         `{"id":`,
			setupMock:     func(_ fixture) {},
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:  "event without id",
			value: `{"name":"room.created"}`,
			setupMock: func(f fixture) {
				f.activities.EXPECT().Record(gomock.Any(), gomock.Any()).Return(failure.BadRequestFromString("event id is required"))
			},
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:  "store failure",
			value: `{"id":"ev-2","name":"room.created"}`,
			setupMock: func(f fixture) {
				f.activities.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.worker().HandleEvent(context.Background(), kafkaGo.Message{Value: []byte(tt.value)})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantPermanent, kafka.IsPermanent(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
