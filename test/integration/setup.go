package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/sydqwycs/dajiexiaoxiang/internal/adapters/handler/http"
	repo "github.com/sydqwycs/dajiexiaoxiang/internal/adapters/repository/postgres"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/services"
)

// sha256("test-password")
const adminPasswordHash = "c638833f69bbfb3c267afa0a74434812436b8f08a81fd263c6be6871de4f1265"

const adminPassword = "test-password"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ADMIN_PASSWORD_HASH", adminPasswordHash)

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	pollRepo := repo.NewPollRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	countRepo := repo.NewVoteCountRepository(db)

	pollSvc := services.NewPollService(pollRepo)
	voteSvc := services.NewVoteService(pollRepo, voteRepo)
	resultsSvc := services.NewResultsService(pollRepo, countRepo)
	adminAuth := services.NewAdminAuthService()

	router := handler.NewHandler(
		handler.NewPollHandler(pollSvc),
		handler.NewVoteHandler(voteSvc),
		handler.NewResultsHandler(resultsSvc),
		handler.NewAuthHandler(adminAuth),
		adminAuth,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) adminToken(t *testing.T) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": adminPassword})
	resp, err := app.Client.Post(app.Server.URL+"/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func (app *TestApp) adminRequest(t *testing.T, method, path string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+app.adminToken(t))

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) voteRequest(t *testing.T, pollID, optionID, sourceIP string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"poll_id": pollID, "option_id": optionID})
	req, err := http.NewRequest("POST", app.Server.URL+"/api/votes", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", sourceIP)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}
