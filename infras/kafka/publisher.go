package kafka

import (
	"context"
	"hotelops/config"
	"hotelops/infras/metrics"
	"hotelops/infras/otel"
	"hotelops/shared/constant"
	"hotelops/shared/event"

	"github.com/rs/zerolog/log"
)

type publisher struct {
	client Client
	config *config.Config
	otel   otel.Otel
}

// NewPublisher publishes domain events to the configured event topic. With Kafka disabled events
// are only logged.
func NewPublisher(client Client, config *config.Config, otel otel.Otel) event.Publisher {
	return &publisher{
		client: client,
		config: config,
		otel:   otel,
	}
}

func (p *publisher) Publish(ctx context.Context, events ...event.Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(events) == 0 {
		return nil
	}

	if !p.config.Kafka.Enable {
		for _, evt := range events {
			log.Debug().Str("event", evt.Name).Str("entity_id", evt.EntityID).Msg("Kafka disabled, event not published")
		}

		return nil
	}

	messages := make([]Message, len(events))
	for idx, evt := range events {
		messages[idx] = Message{Key: evt.EntityID, Value: evt}
	}

	err = p.client.SendMessages(ctx, p.config.Kafka.EventTopic, messages...)

	for _, evt := range events {
		metrics.IncEventPublished(evt.Name, err == nil)
	}

	return err
}
