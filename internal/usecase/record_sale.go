package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/rvelasco1/salestext/internal/entity"
	"github.com/rvelasco1/salestext/internal/infra/http/middleware"
	"github.com/rvelasco1/salestext/internal/infra/integration/telnyx"
	"github.com/rvelasco1/salestext/internal/infra/queue"
	"github.com/rvelasco1/salestext/internal/phone"
)

// ConfirmationBody is the one message every new lead receives. The STOP
// instruction is part of the compliance contract, don't reword it casually.
const ConfirmationBody = "Thank you for enrolling! We're here to help with your coverage. Reply STOP to opt out."

type RecordSaleInput struct {
	Phone    string `json:"phone"`
	SaleID   string `json:"saleId"`
	Agent    string `json:"agent"`
	Office   string `json:"office"`
	Source   string `json:"source"`
	HealthID string `json:"healthId"`
	PlanType string `json:"planType"`
}

type RecordSaleOutput struct {
	Ok          bool   `json:"ok"`
	SaleID      int64  `json:"sale_id,omitempty"`
	SentTo      string `json:"sent_to,omitempty"`
	ProviderSID string `json:"provider_sid,omitempty"`
	SkippedSend bool   `json:"skipped_send"`
	Reason      string `json:"reason,omitempty"`
}

type RecordSaleUseCase struct {
	SaleRepo     entity.SaleRepositoryInterface
	OutboundRepo entity.OutboundMessageRepositoryInterface
	Gateway      MessageGateway
	Producer     EventProducer // optional
}

func NewRecordSaleUseCase(
	saleRepo entity.SaleRepositoryInterface,
	outboundRepo entity.OutboundMessageRepositoryInterface,
	gateway MessageGateway,
	producer EventProducer,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		SaleRepo:     saleRepo,
		OutboundRepo: outboundRepo,
		Gateway:      gateway,
		Producer:     producer,
	}
}

// Execute records a sale keyed by canonical phone and sends the one-time
// confirmation SMS. Opted-out leads short-circuit with no write and no
// send. A gateway failure does not abort the workflow: the outbound row is
// written with the FAILED sentinel and the output still reports Ok.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	cleanPhone := phone.Normalize(input.Phone)

	sale := &entity.Sale{
		ExternalSaleID: input.SaleID,
		Phone:          cleanPhone,
		AgentName:      input.Agent,
		Office:         input.Office,
		Source:         input.Source,
		HealthID:       input.HealthID,
		PlanType:       input.PlanType,
	}

	err := uc.SaleRepo.Upsert(ctx, sale)
	if errors.Is(err, entity.ErrSaleOptedOut) {
		middleware.RecordOutboundSMS("skipped")
		return &RecordSaleOutput{
			Ok:          true,
			SkippedSend: true,
			Reason:      "opted_out",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	providerSID := uc.Gateway.SendMessage(ctx, cleanPhone, ConfirmationBody)

	// The attempt is recorded either way: a FAILED sid is data, not an error.
	outbound := &entity.OutboundMessage{
		SaleID:      sale.ID,
		Body:        ConfirmationBody,
		Provider:    entity.ProviderTelnyx,
		ProviderSID: providerSID,
	}
	if err := uc.OutboundRepo.Create(ctx, outbound); err != nil {
		return nil, err
	}

	if providerSID == telnyx.FailedSID {
		middleware.RecordOutboundSMS("failed")
	} else {
		middleware.RecordOutboundSMS("sent")
	}

	if uc.Producer != nil {
		payload := queue.SaleRecordedPayload{
			SaleID:         sale.ID,
			ExternalSaleID: sale.ExternalSaleID,
			Phone:          cleanPhone,
			ProviderSID:    providerSID,
		}
		if err := uc.Producer.PublishSaleRecorded(ctx, payload); err != nil {
			log.Printf("⚠️ queue: failed to publish sale.recorded: %v", err)
		}
	}

	return &RecordSaleOutput{
		Ok:          true,
		SaleID:      sale.ID,
		SentTo:      cleanPhone,
		ProviderSID: providerSID,
		SkippedSend: false,
	}, nil
}
