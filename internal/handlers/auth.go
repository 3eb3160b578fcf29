package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"TASKHIVE_BACK-END/internal/common"
	"TASKHIVE_BACK-END/internal/config"
	"TASKHIVE_BACK-END/internal/dto"
	"TASKHIVE_BACK-END/internal/middleware"
	"TASKHIVE_BACK-END/internal/repositories/tokens"
	"TASKHIVE_BACK-END/internal/repositories/users"
	"TASKHIVE_BACK-END/internal/utils"
	"TASKHIVE_BACK-END/internal/validation"
)

// AuthHandler handles registration, login, and session management
type AuthHandler struct {
	users  users.Repository
	tokens tokens.Repository
	jwt    *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users users.Repository, tokens tokens.Repository, jwt *config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, jwt: jwt}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account and open a first session
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.UserResponse "User created; x-auth header carries the session token"
// @Failure 400 {object} dto.ErrorResponse "Invalid email/password or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := validation.Email(req.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := validation.Password(req.Password); err != nil {
		writeDomainError(w, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	// The unique constraint arbitrates duplicate-email races; there is no
	// pre-check that could lose to a concurrent insert.
	user, err := h.users.Create(r.Context(), req.Email, string(hashedPassword))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}
	if err := h.tokens.Add(r.Context(), user.ID, token); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set(middleware.AuthHeader, token)
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Login handles user login
// @Summary Login user
// @Description Verify credentials and open a new session. Existing sessions stay valid.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.UserResponse "Login successful; x-auth header carries the session token"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeDomainError(w, common.ErrInvalidCredentials)
			return
		}
		writeDomainError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeDomainError(w, common.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}
	if err := h.tokens.Add(r.Context(), user.ID, token); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set(middleware.AuthHeader, token)
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Me returns the current user's identity
// @Summary Get current user
// @Tags users
// @Produce json
// @Param x-auth header string true "Session token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Router /users/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Logout revokes the session token used for this request
// @Summary Logout current session
// @Description Remove this request's token from the user's session set. Other sessions stay valid.
// @Tags users
// @Produce json
// @Param x-auth header string true "Session token"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Router /users/me/token [delete]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	if err := h.tokens.Delete(r.Context(), user.ID, token); err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, struct{}{})
}

// writeDomainError maps repository and business errors to HTTP responses.
// Validation and business-rule failures are 400s, uniform not-found is 404,
// and anything unexpected from the store is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error",
			fmt.Sprintf("%s %s", ve.Field, ve.Message))
	case errors.Is(err, common.ErrDuplicateEmail):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Email already registered", "")
	case errors.Is(err, common.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials", "Email or password is incorrect")
	case errors.Is(err, common.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
	}
}
