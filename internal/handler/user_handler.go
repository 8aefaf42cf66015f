package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"care-info-api/internal/model"
)

type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ListUsers never serializes password hashes; model.User hides the field.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	u := &model.User{
		ID:    mux.Vars(r)["id"],
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.store.UpdateUser(r.Context(), u); err != nil {
		h.fail(w, r, err, "Failed to update user")
		return
	}
	writeMessage(w, http.StatusOK, "User updated successfully")
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "Failed to delete user")
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
