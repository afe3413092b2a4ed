package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/pkg/token"
)

func protectedRouter(t *testing.T, codec *token.Codec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireAccessToken(codec))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountId": c.GetString(ContextAccountID)})
	})
	return router
}

func TestRequireAccessToken_ValidToken(t *testing.T) {
	codec, err := token.New("test-secret-123")
	require.NoError(t, err)
	raw, err := codec.Issue("68b1f0a2c45c8c001f87f635", time.Hour)
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "68b1f0a2c45c8c001f87f635")
}

func TestRequireAccessToken_SchemePrefixIsIgnored(t *testing.T) {
	codec, err := token.New("test-secret-123")
	require.NoError(t, err)
	raw, err := codec.Issue("68b1f0a2c45c8c001f87f635", time.Hour)
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	// the original clients sent "JWT <token>"; bare tokens work too
	for _, header := range []string{"JWT " + raw, "Bearer " + raw, raw} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "header %q", header)
	}
}

func TestRequireAccessToken_MissingHeader(t *testing.T) {
	codec, err := token.New("test-secret-123")
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAccessToken_BadSignature(t *testing.T) {
	codec, err := token.New("test-secret-123")
	require.NoError(t, err)
	rogue, err := token.New("rogue-secret")
	require.NoError(t, err)
	raw, err := rogue.Issue("68b1f0a2c45c8c001f87f635", time.Hour)
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAccessToken_Garbage(t *testing.T) {
	codec, err := token.New("test-secret-123")
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
