package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-inventory-agent/internal/application/inventory"
	"github.com/go-inventory-agent/internal/domain"
)

// SaleHandler handles sale recording and listing endpoints.
type SaleHandler struct {
	svc inventory.Service
}

func NewSaleHandler(svc inventory.Service) *SaleHandler { return &SaleHandler{svc: svc} }

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSales(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSalesByProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sale, err := h.svc.RecordSale(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}
