package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rvelasco1/salestext/internal/usecase"
)

type InboundHandler struct {
	ProcessInboundUC *usecase.ProcessInboundUseCase
}

func NewInboundHandler(uc *usecase.ProcessInboundUseCase) *InboundHandler {
	return &InboundHandler{ProcessInboundUC: uc}
}

// Handle receives Telnyx inbound-message webhooks. Absent payload fields
// stay empty; the workflow tolerates both, and known vs unknown senders
// get the same {"ok": true} answer.
func (h *InboundHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event struct {
		Data struct {
			Payload struct {
				From struct {
					PhoneNumber string `json:"phone_number"`
				} `json:"from"`
				Text string `json:"text"`
			} `json:"payload"`
		} `json:"data"`
	}

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	input := usecase.InboundMessageInput{
		FromPhone: event.Data.Payload.From.PhoneNumber,
		Text:      event.Data.Payload.Text,
	}

	if err := h.ProcessInboundUC.Execute(r.Context(), input); err != nil {
		log.Printf("❌ inbound webhook: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
