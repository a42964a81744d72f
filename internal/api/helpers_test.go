package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Himanshur25/recipe-master/internal/api"
	"github.com/Himanshur25/recipe-master/internal/router"
	"github.com/Himanshur25/recipe-master/internal/service"
	"github.com/Himanshur25/recipe-master/internal/testhelpers"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	images *testhelpers.FakeImageStore
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	images := &testhelpers.FakeImageStore{}

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db, images)

	engine := router.Setup(router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Recipe:         api.NewRecipeHandler(recipeService, images),
		Health:         api.NewHealthHandler(db, nil),
		TokenValidator: authService,
	})

	return &testApp{
		router: engine,
		db:     db,
		auth:   authService,
		images: images,
	}
}

func (a *testApp) registerUser(t *testing.T, email string) string {
	t.Helper()
	_, token, err := a.auth.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return a.do(t, method, path, token, bytes.NewBuffer(data), "application/json")
}

// recipeForm builds a multipart body for the recipe create/update routes;
// imageName adds an image file part when non-empty.
func recipeForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validRecipeFields(title, category string) map[string]string {
	return map[string]string{
		"title":       title,
		"ingredient":  "Ingredients for " + title,
		"instruction": "Instructions for " + title,
		"category":    category,
	}
}

func assertFailureEnvelope(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(code), body["statusCode"])
	require.Equal(t, message, body["message"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	require.Empty(t, data)
}
