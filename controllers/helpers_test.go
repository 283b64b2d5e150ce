package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/controllers"
	"blogapi/models"
	"blogapi/routes"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// One named in-memory database per test, shared across the pool's
	// connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.AuthToken{}))

	r := gin.New()
	routes.SetupRoutes(r,
		controllers.NewAuthController(db),
		controllers.NewPostController(db),
		services.NewTokenService(db),
	)
	return r, db
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data       map[string]json.RawMessage `json:"data"`
	Message    string                     `json:"message"`
	StatusCode int                        `json:"statusCode"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func fieldErrors(t *testing.T, env envelope) map[string][]string {
	t.Helper()
	errs := make(map[string][]string)
	require.Contains(t, env.Data, "errors")
	require.NoError(t, json.Unmarshal(env.Data["errors"], &errs))
	return errs
}

// registerUser drives the real endpoint and returns the created user id
// and its bearer token.
func registerUser(t *testing.T, r http.Handler, email string) (uint, string) {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/register", gin.H{
		"name":                  "Test User",
		"email":                 email,
		"password":              "secret-password",
		"password_confirmation": "secret-password",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))

	var user models.User
	require.NoError(t, json.Unmarshal(env.Data["user"], &user))
	return user.ID, token
}

func createPost(t *testing.T, r http.Handler, token string, authorID uint, title, content string) models.Post {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/v1/posts/store", gin.H{
		"title":     title,
		"content":   content,
		"author_id": authorID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var post models.Post
	require.NoError(t, json.Unmarshal(env.Data["post"], &post))
	return post
}
