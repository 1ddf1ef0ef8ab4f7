package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// SaleRecordedPayload announces a recorded (inserted or refreshed) sale to
// downstream consumers. EventID is assigned on publish so consumers can
// deduplicate redeliveries.
type SaleRecordedPayload struct {
	EventID        string `json:"event_id"`
	SaleID         int64  `json:"sale_id"`
	ExternalSaleID string `json:"external_sale_id"`
	Phone          string `json:"phone"`
	ProviderSID    string `json:"provider_sid"`
}

type OptOutPayload struct {
	EventID string `json:"event_id"`
	Phone   string `json:"phone"`
	SaleID  *int64 `json:"sale_id,omitempty"`
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishSaleRecorded(ctx context.Context, payload SaleRecordedPayload) error {
	payload.EventID = uuid.New().String()
	return p.publish(ctx, SaleRecordedKey, payload)
}

func (p *Producer) PublishOptOut(ctx context.Context, payload OptOutPayload) error {
	payload.EventID = uuid.New().String()
	return p.publish(ctx, OptOutKey, payload)
}

func (p *Producer) publish(ctx context.Context, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}

	return nil
}
