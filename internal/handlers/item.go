package handlers

import (
	"ShoppingList/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ItemHandler CRUD позиций списков.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ItemRequest тело POST /items и PUT /items/{item_id}.
// Не переданные in_shopping_list и quantity получают значения по умолчанию (true и 1).
type ItemRequest struct {
	ListServerID   string   `json:"list_server_id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	InShoppingList *bool    `json:"in_shopping_list"`
	Quantity       *int     `json:"quantity"`
	ImageURL       *string  `json:"image_url"`
	Price          *float64 `json:"price"`
	PreviousPrice  *float64 `json:"previous_price"`
	AddedByUID     *string  `json:"added_by_uid"`
}

// UnmarshalJSON отличает отсутствующие in_shopping_list/quantity от явного null:
// первые получают значения по умолчанию, второй отклоняется.
func (req *ItemRequest) UnmarshalJSON(data []byte) error {
	type plain ItemRequest
	if err := json.Unmarshal(data, (*plain)(req)); err != nil {
		return err
	}
	return rejectNulls(data, "in_shopping_list", "quantity")
}

func (req ItemRequest) toInput() service.ItemInput {
	return service.ItemInput{
		ListServerID:   req.ListServerID,
		Name:           req.Name,
		InShoppingList: req.InShoppingList,
		Quantity:       req.Quantity,
		ImageURL:       req.ImageURL,
		Price:          req.Price,
		PreviousPrice:  req.PreviousPrice,
		AddedByUID:     req.AddedByUID,
	}
}

// List GET /items?list_server_id=
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	listServerID := r.URL.Query().Get("list_server_id")

	items, err := h.ItemService.List(r.Context(), listServerID)
	if err != nil {
		h.Logger.Errorw("List items: service error", "list_server_id", listServerID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.Logger)
}

// Create POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Create item: invalid request", "error", err)
		writeRequestError(w, err, h.Logger)
		return
	}

	it, err := h.ItemService.Create(r.Context(), req.toInput())
	if err != nil {
		logServiceError(h.Logger, "Create item", err, "list_server_id", req.ListServerID)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, it, h.Logger)
}

// Update PUT /items/{item_id}. list_server_id и added_by_uid из тела не применяются.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		writeRequestError(w, err, h.Logger)
		return
	}
	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Update item: invalid request", "id", id, "error", err)
		writeRequestError(w, err, h.Logger)
		return
	}

	if err := h.ItemService.Update(r.Context(), id, req.toInput()); err != nil {
		logServiceError(h.Logger, "Update item", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, statusOK, h.Logger)
}

// Delete DELETE /items/{item_id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		writeRequestError(w, err, h.Logger)
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		logServiceError(h.Logger, "Delete item", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, statusOK, h.Logger)
}
