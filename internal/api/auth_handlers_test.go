package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"docuvault/internal/identity"
	"docuvault/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	email := uniqueEmail()

	rr := doRequest(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{Email: email, Password: "correct-horse", Name: "Ada"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	registered := decode[AuthResponse](t, rr)
	require.Equal(t, email, registered.User.Email)
	require.NotEmpty(t, registered.Token)
	require.NotContains(t, rr.Body.String(), "password")

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rr := doRequest(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{Email: email, Password: "another-pass", Name: "Eve"})
		require.Equal(t, http.StatusConflict, rr.Code)
		require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
		problem := decode[ProblemDetail](t, rr)
		require.Equal(t, http.StatusConflict, problem.Status)
	})

	t.Run("login succeeds", func(t *testing.T) {
		rr := doRequest(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: "correct-horse"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decode[AuthResponse](t, rr)
		require.Equal(t, registered.User.ID, resp.User.ID)

		me := doRequest(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
		require.Equal(t, http.StatusOK, me.Code)
		user := decode[models.User](t, me)
		require.Equal(t, email, user.Email)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrong := doRequest(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: "nope-nope"})
		unknown := doRequest(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: uniqueEmail(), Password: "correct-horse"})

		require.Equal(t, http.StatusUnauthorized, wrong.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, wrong.Body.String(), unknown.Body.String())
	})
}

func TestRegisterValidation(t *testing.T) {
	rr := doRequest(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{Email: "not-an-email", Password: "correct-horse", Name: "Ada"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rr = httptest.NewRecorder()
	testHandler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			testHandler.ServeHTTP(rr, req)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestPasswordResetFlow(t *testing.T) {
	token, user := newUser(t)
	require.NotEmpty(t, token)

	rr := doRequest(t, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{Email: user.Email})
	require.Equal(t, http.StatusOK, rr.Code)
	known := decode[MessageResponse](t, rr)

	rr = doRequest(t, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{Email: uniqueEmail()})
	require.Equal(t, http.StatusOK, rr.Code)
	unknown := decode[MessageResponse](t, rr)
	require.Equal(t, known, unknown)
	require.Equal(t, identity.ForgotPasswordMessage, known.Message)

	require.Equal(t, 1, testMailbox.countFor(user.Email))
	resetToken := testMailbox.resetTokenFor(t, user.Email)

	rr = doRequest(t, http.MethodPost, "/api/auth/reset-password/"+resetToken, "", ResetPasswordRequest{Password: "brand-new-secret"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doRequest(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: user.Email, Password: "correct-horse"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = doRequest(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: user.Email, Password: "brand-new-secret"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, http.MethodPost, "/api/auth/reset-password/"+resetToken, "", ResetPasswordRequest{Password: "third-secret-value"})
	require.Equal(t, http.StatusBadRequest, rr.Code, "reset tokens are single-use")
}
