// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/service"
)

type AuthHandler struct {
	accountService *service.AccountService
}

func NewAuthHandler(accountService *service.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// Register handles public self-registration. The role is always volunteer.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.Role = ""

	output, err := h.accountService.Register(r.Context(), input, nil)
	if err != nil {
		handleError(w, r, "registration", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Registration successful", output)
}

// RegisterAdmin lets a superadmin create an account with any role.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.accountService.Register(r.Context(), input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "admin registration", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Account created", output)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.accountService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, "login", err)
		return
	}

	respondWithData(w, http.StatusOK, "Login successful", output)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondWithData(w, http.StatusOK, "", middleware.AccountFromContext(r.Context()))
}
