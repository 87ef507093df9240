package movies_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	httpapi "github.com/bruinmovies/server/internal/movies/http"
	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/internal/movies/store/drivers/mongo"
	"github.com/bruinmovies/server/pkg/jwtx"
)

/*
 * End-to-end tests for the movies service against a real document store.
 * A Mongo container backs the store; the HTTP stack runs in-process with a
 * capturing mailer standing in for SMTP so tests can read issued passcodes.
 */

const (
	mongoImage   = "mongo:7"
	testIssuer   = "bruinmovies-e2e"
	testSecret   = "e2e-shared-secret"
	testPassword = "correct horse battery staple"
)

// captureMailer records issued passcodes per recipient.
type captureMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *captureMailer) SendPasscode(_ context.Context, to, passcode string, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.codes == nil {
		m.codes = make(map[string]string)
	}
	m.codes[to] = passcode
	return nil
}

func (m *captureMailer) lastCode(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[to]
}

// setupServer starts a Mongo container and an in-process HTTP server wired
// the same way the application wires itself.
func setupServer(t *testing.T) (baseURL string, mailer *captureMailer) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, mappedPort.Port())
	st, err := mongo.NewStore(ctx, uri, "bruinmovies_e2e")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	mailer = &captureMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(signer, "e2e", st, logger)
	router.AuthService = &service.AuthService{
		Store:  st,
		Signer: signer,
		Mailer: mailer,
		Issuer: testIssuer,
	}
	router.CommentService = &service.CommentService{Store: st}
	router.WatchlistService = &service.WatchlistService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server.URL, mailer
}

// doJSON issues a request with a JSON body and decodes the JSON response.
func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(data) > 0 {
			require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
		}
	}
	return resp.StatusCode
}

// signUpAndSignIn registers a user and runs the full passcode exchange,
// returning a valid session token.
func signUpAndSignIn(t *testing.T, baseURL string, mailer *captureMailer, username, email string) string {
	t.Helper()

	status := doJSON(t, http.MethodPost, baseURL+"/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var initResp struct {
		RequiresOTP bool `json:"requiresOTP"`
	}
	status = doJSON(t, http.MethodPost, baseURL+"/signin", "", map[string]string{
		"email":    email,
		"password": testPassword,
	}, &initResp)
	require.Equal(t, http.StatusOK, status)
	require.True(t, initResp.RequiresOTP)

	code := mailer.lastCode(email)
	require.NotEmpty(t, code, "passcode should have been delivered")

	var verifyResp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	status = doJSON(t, http.MethodPost, baseURL+"/verify-otp", "", map[string]string{
		"email": email,
		"otp":   code,
	}, &verifyResp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, verifyResp.Token)
	require.Equal(t, username, verifyResp.Username)

	return verifyResp.Token
}
