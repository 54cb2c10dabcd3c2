package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pampa-pos/dashboard/internal/draft"
	"github.com/pampa-pos/dashboard/internal/model"
	"github.com/pampa-pos/dashboard/internal/service"
	"go.uber.org/zap"
)

// OrderSaver defines the service method draft submission needs.
// Satisfied by *service.OrderService.
type OrderSaver interface {
	SaveDraft(ctx context.Context, d *draft.Draft) (model.Order, error)
}

// DraftHandler manages open drafts: header edits, slot operations and
// submission.
type DraftHandler struct {
	drafts *draft.Store
	repo   OrderRepo
	saver  OrderSaver
	log    *zap.SugaredLogger
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(drafts *draft.Store, repo OrderRepo, saver OrderSaver, log *zap.SugaredLogger) *DraftHandler {
	return &DraftHandler{drafts: drafts, repo: repo, saver: saver, log: log}
}

// RegisterRoutes registers draft endpoints on the given chi router.
func (h *DraftHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.UpdateHeader)
	r.Delete("/{id}", h.Close)
	r.Post("/{id}/lines/{kind}", h.AddLine)
	r.Patch("/{id}/lines/{kind}/{index}", h.UpdateLine)
	r.Delete("/{id}/lines/{kind}/{index}", h.RemoveLine)
	r.Post("/{id}/submit", h.Submit)
}

type createDraftRequest struct {
	// OrderID pre-fills the draft from an existing order, for editing.
	// Zero means a brand-new order.
	OrderID int64 `json:"order_id"`
}

// Create handles POST /drafts.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if req.OrderID == 0 {
		writeJSON(w, http.StatusCreated, h.drafts.Create())
		return
	}

	for _, o := range h.repo.Orders() {
		if o.ID == req.OrderID {
			writeJSON(w, http.StatusCreated, h.drafts.CreateForEdit(o))
			return
		}
	}
	writeError(w, http.StatusNotFound, "order not found")
}

// Get handles GET /drafts/{id}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	d, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type updateHeaderRequest struct {
	Customer  *string `json:"customer"`
	Type      *string `json:"type"`
	Notes     *string `json:"notes"`
	AutoPrint *bool   `json:"auto_print"`
}

// UpdateHeader handles PATCH /drafts/{id}: partial update of the
// header fields.
func (h *DraftHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	var req updateHeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.drafts.Mutate(id, func(d *draft.Draft) error {
		if req.Customer != nil {
			d.Customer = *req.Customer
		}
		if req.Type != nil {
			if *req.Type != model.TypeDelivery && *req.Type != model.TypeThirdParty {
				return service.ErrInvalidOrderType
			}
			d.Type = *req.Type
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
		if req.AutoPrint != nil {
			d.AutoPrint = *req.AutoPrint
		}
		return nil
	})
	if err != nil {
		h.mutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Close handles DELETE /drafts/{id}: discard without saving.
func (h *DraftHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	h.drafts.Discard(id)
	writeJSON(w, http.StatusNoContent, nil)
}

// AddLine handles POST /drafts/{id}/lines/{kind}: append a blank slot.
func (h *DraftHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	kind := draft.LineKind(chi.URLParam(r, "kind"))

	d, err := h.drafts.Mutate(id, func(d *draft.Draft) error {
		return d.AddLine(kind)
	})
	if err != nil {
		h.mutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type updateLineRequest struct {
	CatalogID *string `json:"catalog_id"`
	Quantity  *int    `json:"quantity"`
}

// UpdateLine handles PATCH /drafts/{id}/lines/{kind}/{index}: change a
// single field of one slot.
func (h *DraftHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	kind := draft.LineKind(chi.URLParam(r, "kind"))

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line index")
		return
	}

	var req updateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.drafts.Mutate(id, func(d *draft.Draft) error {
		return d.UpdateLine(kind, index, req.CatalogID, req.Quantity)
	})
	if err != nil {
		h.mutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// RemoveLine handles DELETE /drafts/{id}/lines/{kind}/{index}. Removing
// the last remaining slot is a no-op; the returned draft reflects
// whatever actually happened.
func (h *DraftHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	kind := draft.LineKind(chi.URLParam(r, "kind"))

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line index")
		return
	}

	d, err := h.drafts.Mutate(id, func(d *draft.Draft) error {
		return d.RemoveLine(kind, index)
	})
	if err != nil {
		h.mutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Submit handles POST /drafts/{id}/submit: run the save workflow. The
// draft is only discarded once the save went through, so a failed
// submit leaves it editable.
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	d, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}

	saved, err := h.saver.SaveDraft(r.Context(), &d)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCustomer) || errors.Is(err, service.ErrInvalidOrderType) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorw("submit draft", "draft_id", id, "error", err)
		writeError(w, backendStatus(err), "could not save order")
		return
	}

	h.drafts.Discard(id)
	writeJSON(w, http.StatusCreated, saved)
}

func (h *DraftHandler) mutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, draft.ErrNotFound):
		writeError(w, http.StatusNotFound, "draft not found")
	case errors.Is(err, draft.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, "unknown line kind")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return uuid.Nil, false
	}
	return id, true
}
