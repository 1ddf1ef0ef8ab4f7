package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rvelasco1/salestext/internal/usecase"
)

type SaleHandler struct {
	RecordSaleUC *usecase.RecordSaleUseCase
}

func NewSaleHandler(uc *usecase.RecordSaleUseCase) *SaleHandler {
	return &SaleHandler{RecordSaleUC: uc}
}

// HandleNewSale is the submit-a-sale endpoint. Missing fields decode to
// empty strings; only malformed JSON is rejected.
func (h *SaleHandler) HandleNewSale(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordSaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	output, err := h.RecordSaleUC.Execute(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(output)
}
