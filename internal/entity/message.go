package entity

import (
	"context"
	"time"
)

const ProviderTelnyx = "telnyx"

// OutboundMessage records one confirmation SMS attempt. Immutable after
// creation; a failed send is still recorded, with the failure sentinel
// in ProviderSID.
type OutboundMessage struct {
	ID          int64     `json:"id"`
	SaleID      int64     `json:"sale_id"`
	Body        string    `json:"body"`
	Provider    string    `json:"provider"`
	ProviderSID string    `json:"provider_sid"`
	CreatedOn   time.Time `json:"created_on"`
}

// InboundMessage records one reply from a lead. SaleID is nil when the
// sender's phone matches no known sale.
type InboundMessage struct {
	ID        int64     `json:"id"`
	SaleID    *int64    `json:"sale_id,omitempty"`
	FromPhone string    `json:"from_phone"`
	Body      string    `json:"body"`
	CreatedOn time.Time `json:"created_on"`
}

type OutboundMessageRepositoryInterface interface {
	Create(ctx context.Context, msg *OutboundMessage) error
	ListBySale(ctx context.Context, saleID int64) ([]OutboundMessage, error)
}

type InboundMessageRepositoryInterface interface {
	Create(ctx context.Context, msg *InboundMessage) error
	ListBySale(ctx context.Context, saleID int64) ([]InboundMessage, error)
}
