package handlers

import (
	"errors"
	"net/http"

	"github.com/diagnosis/movezy-backend/internal/domain"
	"github.com/diagnosis/movezy-backend/internal/http/response"
	"github.com/diagnosis/movezy-backend/internal/service"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

type UsersHandler struct {
	Users service.UserService
}

func NewUsersHandler(users service.UserService) *UsersHandler {
	return &UsersHandler{Users: users}
}

func (h *UsersHandler) register(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeObject(w, r)
	if err != nil {
		response.BadRequest(w, "Request body must be a JSON object")
		return
	}

	if err := validate.Struct(registerInput{Email: rec.GetString("email")}); err != nil {
		response.BadRequest(w, "A valid email is required")
		return
	}

	res, err := h.Users.Register(r.Context(), rec)
	if errors.Is(err, domain.ErrUserExists) {
		response.JSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to create user", "error", err)
		response.InternalError(w, "Error creating user")
		return
	}

	response.JSON(w, http.StatusOK, res)
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list users", "error", err)
		response.InternalError(w, "Error fetching users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UsersHandler) find(w http.ResponseWriter, r *http.Request) {
	q := FindUserQuery{
		ID:    r.URL.Query().Get("id"),
		Email: r.URL.Query().Get("email"),
	}
	if q.ID == "" && q.Email == "" {
		response.BadRequest(w, "Provide an id or an email")
		return
	}
	if err := validate.Struct(q); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid user id", response.CodeInvalidID)
		return
	}

	user, err := h.Users.Find(r.Context(), domain.UserFilter{ID: q.ID, Email: q.Email})
	if errors.Is(err, domain.ErrInvalidID) {
		response.WriteError(w, http.StatusBadRequest, "Invalid user id", response.CodeInvalidID)
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to fetch user", "error", err)
		response.InternalError(w, "Error fetching user")
		return
	}
	if user == nil {
		response.NotFound(w, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, user)
}
