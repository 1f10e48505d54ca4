package api

import (
	"net/http"

	"docuvault/internal/identity"
	"docuvault/internal/models"

	"github.com/go-chi/chi/v5"
)

type RegisterRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse"`
	Name     string `json:"name" example:"Ada"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" example:"ada@example.com"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" example:"brand-new-secret"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// @Summary      Register a new account
// @Description  Creates a user and returns it together with a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Account details"
// @Success      201              {object}  AuthResponse
// @Failure      400              {object}  ProblemDetail "Validation failed"
// @Failure      409              {object}  ProblemDetail "Email already registered"
// @Failure      500              {object}  ProblemDetail
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err)
		return
	}

	sess, err := s.identity.Register(r.Context(), identity.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusCreated, AuthResponse{User: sess.User, Token: sess.Token})
}

// @Summary      Log in
// @Description  Exchanges email and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Login Credentials"
// @Success      200           {object}  AuthResponse
// @Failure      400           {object}  ProblemDetail "Invalid request body"
// @Failure      401           {object}  ProblemDetail "Invalid credentials"
// @Failure      500           {object}  ProblemDetail
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err)
		return
	}

	sess, err := s.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, AuthResponse{User: sess.User, Token: sess.Token})
}

// @Summary      Request a password reset
// @Description  Emails a single-use reset link. The answer is the same whether or not the address is registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        forgotPasswordRequest  body      ForgotPasswordRequest  true  "Account email"
// @Success      200                    {object}  MessageResponse
// @Failure      400                    {object}  ProblemDetail "Invalid request body"
// @Failure      500                    {object}  ProblemDetail
// @Router       /auth/forgot-password [post]
func (s *Server) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err)
		return
	}

	if err := s.identity.ForgotPassword(r.Context(), req.Email); err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, MessageResponse{Message: identity.ForgotPasswordMessage})
}

// @Summary      Reset password
// @Description  Sets a new password using the token from the reset email. Tokens are single-use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token                 path      string                true  "Reset token"
// @Param        resetPasswordRequest  body      ResetPasswordRequest  true  "New password"
// @Success      200                   {object}  MessageResponse
// @Failure      400                   {object}  ProblemDetail "Invalid or expired token"
// @Failure      500                   {object}  ProblemDetail
// @Router       /auth/reset-password/{token} [post]
func (s *Server) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err)
		return
	}

	if err := s.identity.ResetPassword(r.Context(), chi.URLParam(r, "token"), req.Password); err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, MessageResponse{Message: "password has been reset"})
}
