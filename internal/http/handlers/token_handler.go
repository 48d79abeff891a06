package handlers

import (
	"net/http"

	"github.com/diagnosis/movezy-backend/internal/http/response"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

// TokenIssuer is satisfied by *auth.TokenService.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type TokenHandler struct {
	Tokens TokenIssuer
}

func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{Tokens: tokens}
}

// issue signs whatever object the caller posts.
func (h *TokenHandler) issue(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeObject(w, r)
	if err != nil {
		response.BadRequest(w, "Request body must be a JSON object")
		return
	}

	token, err := h.Tokens.Issue(rec.Map())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to issue token", "error", err)
		response.InternalError(w, "Error issuing token")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
