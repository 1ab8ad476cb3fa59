package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moto-catalog-backend/internal/api/middleware"
	"moto-catalog-backend/internal/config"
	"moto-catalog-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	router  *gin.Engine
	logs    *bytes.Buffer
	prevOut io.Writer
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.logs = &bytes.Buffer{}
	suite.prevOut = logrus.StandardLogger().Out
	logrus.SetOutput(suite.logs)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	suite.router = gin.New()
	suite.router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery(), middleware.CORS(cfg))
	suite.router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": logger.RequestID(c.Request.Context())})
	})
	suite.router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
}

func (suite *MiddlewareTestSuite) TearDownTest() {
	logrus.SetOutput(suite.prevOut)
}

func (suite *MiddlewareTestSuite) TestRequestIDGeneratedAndPropagated() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(suite.T(), id)
	var body map[string]string
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), id, body["request_id"])
	assert.Contains(suite.T(), suite.logs.String(), id)
}

func (suite *MiddlewareTestSuite) TestRequestIDFromHeaderIsKept() {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func (suite *MiddlewareTestSuite) TestRecovery() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), suite.logs.String(), "Recovered from panic")
}

func (suite *MiddlewareTestSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expires time.Time) string {
	t.Helper()
	claims := middleware.Claims{
		Username: "editor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAccessControl(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ac := middleware.NewAccessControl("s3cret")
	router := gin.New()
	router.Use(ac.RequireAuth())
	router.PUT("/mutate", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("username"))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, "s3cret", jwt.SigningMethodHS256, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, "s3cret", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/mutate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "editor", w.Body.String())
			}
		})
	}
}
