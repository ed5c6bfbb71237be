package http

import (
	"net/http"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/internal/authd/service"
)

// VerifyHandler serves POST /verify: the OTP-gated account activation
// workflow.
type VerifyHandler struct {
	AccountService *service.AccountService
}

type verifyRequest struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	SessionCode string `json:"session_code"`
}

func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.AccountService.Activate(r.Context(), req.ID, domain.OTPChallenge{
		Code:        req.Code,
		SessionCode: req.SessionCode,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
