package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rvelasco1/salestext/internal/entity"
	"github.com/rvelasco1/salestext/internal/usecase"
)

type AdminHandler struct {
	SaleRepo     entity.SaleRepositoryInterface
	OutboundRepo entity.OutboundMessageRepositoryInterface
	InboundRepo  entity.InboundMessageRepositoryInterface
	Gateway      usecase.MessageGateway
	Templates    *template.Template
}

func NewAdminHandler(
	saleRepo entity.SaleRepositoryInterface,
	outboundRepo entity.OutboundMessageRepositoryInterface,
	inboundRepo entity.InboundMessageRepositoryInterface,
	gateway usecase.MessageGateway,
	templates *template.Template,
) *AdminHandler {
	return &AdminHandler{
		SaleRepo:     saleRepo,
		OutboundRepo: outboundRepo,
		InboundRepo:  inboundRepo,
		Gateway:      gateway,
		Templates:    templates,
	}
}

// Home lists the latest sales with the filter controls from the query
// string: limit, from_date, to_date, today, search.
func (h *AdminHandler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	filter := entity.ListFilter{
		Limit:    limit,
		FromDate: q.Get("from_date"),
		ToDate:   q.Get("to_date"),
		Today:    q.Get("today") == "true" || q.Get("today") == "1",
		Search:   q.Get("search"),
	}

	sales, err := h.SaleRepo.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Templates.ExecuteTemplate(w, "admin_home.html", map[string]interface{}{
		"Sales":  sales,
		"Filter": filter,
		"Msg":    q.Get("msg"),
	})
}

func (h *AdminHandler) SaleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid sale id", http.StatusBadRequest)
		return
	}

	sale, err := h.SaleRepo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrSaleNotFound) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<h3>Sale not found</h3>"))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outbound, err := h.OutboundRepo.ListBySale(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	inbound, err := h.InboundRepo.ListBySale(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Templates.ExecuteTemplate(w, "sale_detail.html", map[string]interface{}{
		"Sale":     sale,
		"Outbound": outbound,
		"Inbound":  inbound,
	})
}

func (h *AdminHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid sale id", http.StatusBadRequest)
		return
	}

	if err := h.SaleRepo.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ResendConfirmation re-sends the confirmation SMS to one sale. The send
// is not recorded as an OutboundMessage, and opted-out leads are skipped:
// the flag suppresses all further outbound messaging.
func (h *AdminHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid sale id", http.StatusBadRequest)
		return
	}

	sale, err := h.SaleRepo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrSaleNotFound) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<h3>Sale not found</h3>"))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if sale.OptedOut {
		http.Redirect(w, r, "/admin?msg=opted_out", http.StatusSeeOther)
		return
	}

	h.Gateway.SendMessage(r.Context(), sale.Phone, usecase.ConfirmationBody)

	http.Redirect(w, r, "/admin?msg=sent", http.StatusSeeOther)
}
