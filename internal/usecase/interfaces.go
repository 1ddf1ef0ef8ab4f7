package usecase

import (
	"context"

	"github.com/rvelasco1/salestext/internal/infra/queue"
)

// MessageGateway sends one SMS and reports the provider message ID, or the
// telnyx.FailedSID sentinel. It never returns an error by contract.
type MessageGateway interface {
	SendMessage(ctx context.Context, to, text string) string
}

type EventProducer interface {
	PublishSaleRecorded(ctx context.Context, payload queue.SaleRecordedPayload) error
	PublishOptOut(ctx context.Context, payload queue.OptOutPayload) error
}

type OptOutAlertService interface {
	SendOptOutAlert(phone string, saleID *int64) error
}
