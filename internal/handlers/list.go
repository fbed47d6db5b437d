package handlers

import (
	"ShoppingList/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ListHandler CRUD списков покупок.
type ListHandler struct {
	ListService *service.ListService
	Logger      *zap.SugaredLogger
}

// NewListHandler создаёт хендлер lists
func NewListHandler(listService *service.ListService, logger *zap.SugaredLogger) *ListHandler {
	return &ListHandler{ListService: listService, Logger: logger}
}

// ListRequest тело POST /lists и PUT /lists/{list_id}.
type ListRequest struct {
	Name          string   `json:"name" validate:"required"`
	OwnerID       string   `json:"owner_id" validate:"required"`
	MembersEmails []string `json:"members_emails"`
}

// UnmarshalJSON отклоняет "members_emails": null; отсутствующее поле означает пустой список.
func (req *ListRequest) UnmarshalJSON(data []byte) error {
	type plain ListRequest
	if err := json.Unmarshal(data, (*plain)(req)); err != nil {
		return err
	}
	return rejectNulls(data, "members_emails")
}

func (req ListRequest) toInput() service.ListInput {
	return service.ListInput{Name: req.Name, OwnerID: req.OwnerID, MembersEmails: req.MembersEmails}
}

// List GET /lists?user_id=
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	lists, err := h.ListService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List lists: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, lists, h.Logger)
}

// Create POST /lists
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Create list: invalid request", "error", err)
		writeRequestError(w, err, h.Logger)
		return
	}

	l, err := h.ListService.Create(r.Context(), req.toInput())
	if err != nil {
		logServiceError(h.Logger, "Create list", err, "owner_id", req.OwnerID)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, l, h.Logger)
}

// Update PUT /lists/{list_id}. owner_id из тела игнорируется.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "list_id")
	if err != nil {
		writeRequestError(w, err, h.Logger)
		return
	}
	var req ListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Update list: invalid request", "id", id, "error", err)
		writeRequestError(w, err, h.Logger)
		return
	}

	if err := h.ListService.Update(r.Context(), id, req.toInput()); err != nil {
		logServiceError(h.Logger, "Update list", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, statusOK, h.Logger)
}

// Delete DELETE /lists/{list_id}
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "list_id")
	if err != nil {
		writeRequestError(w, err, h.Logger)
		return
	}

	if err := h.ListService.Delete(r.Context(), id); err != nil {
		logServiceError(h.Logger, "Delete list", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", h.Logger)
		return
	}
	writeJSON(w, http.StatusOK, statusOK, h.Logger)
}
