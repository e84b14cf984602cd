package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Mikailhassan/bursary-aden/internal/middleware"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/auth"
)

// Shared helpers for controller tests. Routes are registered the same way
// the application mounts them so handler tests exercise real paths.

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "controller-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "bursary-aden-test",
	})
}

func newTestAuthMiddleware(jwtService *auth.JWTService) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtService)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func bearerToken(t *testing.T, jwtService *auth.JWTService, userID int64, email, admissionNumber string) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(userID, email, admissionNumber)
	require.NoError(t, err)
	return "Bearer " + token
}

// multipartBody builds a multipart form from string fields and optional
// files (field name to file name; content is a fixed byte string).
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doRequest(router *gin.Engine, method, path string, body *bytes.Buffer, contentType, authHeader string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v string) *bytes.Buffer {
	t.Helper()
	return bytes.NewBufferString(v)
}
