package http

import (
	"net/http"

	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/pkg/httpx"
)

type tokenRequest struct {
	Token string `json:"token"`
}

// TokenVerifyHandler serves POST /token/verify. Validation never
// errors: any malformed, expired, or mis-signed token is valid=false.
type TokenVerifyHandler struct {
	TokenService *service.TokenService
}

type tokenValidationResponse struct {
	Valid bool `json:"valid"`
}

func (h *TokenVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenValidationResponse{
		Valid: h.TokenService.VerifyAccess(req.Token),
	})
}

// TokenRefreshHandler serves POST /token/refresh: rotates a valid
// refresh token into a brand-new pair.
type TokenRefreshHandler struct {
	TokenService *service.TokenService
}

func (h *TokenRefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.TokenService.Refresh(req.Token)
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
