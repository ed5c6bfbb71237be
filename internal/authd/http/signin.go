package http

import (
	"net/http"

	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/pkg/httpx"
)

// SigninHandler serves POST /signin: password authentication followed
// by token pair issuance.
type SigninHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (h *SigninHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.AccountService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.TokenService.CreateTokenPair(account.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenPairResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}
