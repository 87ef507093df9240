package movies_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignInExchangeE2E(t *testing.T) {
	baseURL, mailer := setupServer(t)

	status := doJSON(t, http.MethodPost, baseURL+"/signup", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/signup", "", map[string]string{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": testPassword,
		}, nil)
		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/signin", "", map[string]string{
			"email":    "alice@example.com",
			"password": "not the password",
		}, nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("signin response never carries the passcode", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, http.MethodPost, baseURL+"/signin", "", map[string]string{
			"email":    "alice@example.com",
			"password": testPassword,
		}, &resp)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, map[string]any{"requiresOTP": true}, resp)

		code := mailer.lastCode("alice@example.com")
		require.NotEmpty(t, code)
	})

	t.Run("wrong otp is unauthorized and not consuming", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/verify-otp", "", map[string]string{
			"email": "alice@example.com",
			"otp":   "000000",
		}, nil)
		require.Equal(t, http.StatusUnauthorized, status)

		var resp map[string]any
		status = doJSON(t, http.MethodPost, baseURL+"/verify-otp", "", map[string]string{
			"email": "alice@example.com",
			"otp":   mailer.lastCode("alice@example.com"),
		}, &resp)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, resp["token"])
	})

	t.Run("otp is single use", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/verify-otp", "", map[string]string{
			"email": "alice@example.com",
			"otp":   mailer.lastCode("alice@example.com"),
		}, nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("token gates protected endpoints", func(t *testing.T) {
		status := doJSON(t, http.MethodGet, baseURL+"/watchlist", "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, status)

		status = doJSON(t, http.MethodGet, baseURL+"/watchlist", "garbage-token", nil, nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("user lookup resolves display name", func(t *testing.T) {
		var resp map[string]string
		status := doJSON(t, http.MethodGet, baseURL+"/user?email=alice@example.com", "", nil, &resp)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "alice", resp["username"])

		status = doJSON(t, http.MethodGet, baseURL+"/user?email=ghost@example.com", "", nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestProfileE2E(t *testing.T) {
	baseURL, mailer := setupServer(t)
	token := signUpAndSignIn(t, baseURL, mailer, "bob", "bob@example.com")

	var profile map[string]any
	status := doJSON(t, http.MethodGet, baseURL+"/profile", token, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "bob", profile["username"])
	require.Equal(t, "bob@example.com", profile["email"])

	status = doJSON(t, http.MethodPut, baseURL+"/profile", token, map[string]string{
		"biography": "likes long movies",
		"major":     "Film",
	}, &profile)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "likes long movies", profile["biography"])
	require.Equal(t, "Film", profile["major"])
	require.Equal(t, "bob", profile["username"], "omitted fields untouched")
}
