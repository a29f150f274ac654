package kafka_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/kafka"
	kafkaMocks "hotelops/infras/kafka/mocks"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/shared/event"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	evt := event.New("booking", event.ActionCreated, "b-1", "system", nil)

	tests := []struct {
		name      string
		enable    bool
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name:   "disabled does not touch the broker",
			enable: false,
			setupMock: func(_ *kafkaMocks.MockClient) {
			},
		},
		{
			name:   "enabled sends keyed message to event topic",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "hotel-events", kafka.Message{Key: "b-1", Value: evt}).
					Return(nil)
			},
		},
		{
			name:   "broker failure is returned",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "hotel-events", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.enable
			cfg.Kafka.EventTopic = "hotel-events"

			err := kafka.NewPublisher(client, cfg, otelMocks.NewOtel()).Publish(context.Background(), evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeKafkaMessage(t *testing.T) {
	msg := kafkaGo.Message{Value: []byte(`{"name":"task.overdue","entity":"task","entity_id":"t-1"}`)}

	evt, err := kafka.DecodeKafkaMessage[event.Event](msg)

	assert.NoError(t, err)
	assert.Equal(t, "task.overdue", evt.Name)
	assert.Equal(t, "t-1", evt.EntityID)

	_, err = kafka.DecodeKafkaMessage[event.Event](kafkaGo.Message{Value: []byte(`not-json`)})
	assert.Error(t, err)
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "r-1", Value: map[string]string{"room_number": "101"}}

	out, err := msg.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, []byte("r-1"), out.Key)
	assert.JSONEq(t, `{"room_number":"101"}`, string(out.Value))
}
