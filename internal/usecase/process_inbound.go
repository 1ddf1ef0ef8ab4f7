package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/rvelasco1/salestext/internal/entity"
	"github.com/rvelasco1/salestext/internal/infra/http/middleware"
	"github.com/rvelasco1/salestext/internal/infra/queue"
	"github.com/rvelasco1/salestext/internal/phone"
)

type InboundMessageInput struct {
	FromPhone string
	Text      string
}

type ProcessInboundUseCase struct {
	SaleRepo     entity.SaleRepositoryInterface
	InboundRepo  entity.InboundMessageRepositoryInterface
	Producer     EventProducer      // optional
	AlertService OptOutAlertService // optional
}

func NewProcessInboundUseCase(
	saleRepo entity.SaleRepositoryInterface,
	inboundRepo entity.InboundMessageRepositoryInterface,
	producer EventProducer,
	alertService OptOutAlertService,
) *ProcessInboundUseCase {
	return &ProcessInboundUseCase{
		SaleRepo:     saleRepo,
		InboundRepo:  inboundRepo,
		Producer:     producer,
		AlertService: alertService,
	}
}

// Execute persists an inbound reply and applies the STOP transition.
// Messages from unknown phones are kept with a nil sale reference.
func (uc *ProcessInboundUseCase) Execute(ctx context.Context, input InboundMessageInput) error {
	cleanFrom := phone.Normalize(input.FromPhone)

	var saleID *int64
	sale, err := uc.SaleRepo.FindByPhone(ctx, cleanFrom)
	if err != nil && !errors.Is(err, entity.ErrSaleNotFound) {
		return err
	}
	if sale != nil {
		saleID = &sale.ID
	}

	inbound := &entity.InboundMessage{
		SaleID:    saleID,
		FromPhone: cleanFrom,
		Body:      input.Text,
	}
	if err := uc.InboundRepo.Create(ctx, inbound); err != nil {
		return err
	}
	middleware.RecordInboundSMS()

	if strings.ToUpper(strings.TrimSpace(input.Text)) != "STOP" {
		return nil
	}

	// Targets by phone: affects zero rows for unknown senders.
	if err := uc.SaleRepo.OptOutByPhone(ctx, cleanFrom); err != nil {
		return err
	}
	middleware.RecordOptOut()
	log.Printf("✅ Opt-out recorded for %s", cleanFrom)

	if uc.AlertService != nil {
		go func() {
			if err := uc.AlertService.SendOptOutAlert(cleanFrom, saleID); err != nil {
				log.Printf("⚠️ mail: opt-out alert failed: %v", err)
			}
		}()
	}

	if uc.Producer != nil {
		payload := queue.OptOutPayload{Phone: cleanFrom, SaleID: saleID}
		if err := uc.Producer.PublishOptOut(ctx, payload); err != nil {
			log.Printf("⚠️ queue: failed to publish lead.optout: %v", err)
		}
	}

	return nil
}
