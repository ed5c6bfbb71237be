package http

import (
	"net/http"

	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/pkg/httpx"
)

// SignupHandler serves POST /signup: creates a new inactive account.
type SignupHandler struct {
	AccountService *service.AccountService
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "name, email and password are required",
		})
		return
	}

	if _, err := h.AccountService.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
