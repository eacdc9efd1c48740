package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkupMedia/pagetags-go/cache"
	"github.com/MarkupMedia/pagetags-go/config"
	"github.com/MarkupMedia/pagetags-go/internal/observability/logging"
	"github.com/MarkupMedia/pagetags-go/store"
	"github.com/MarkupMedia/pagetags-go/utils"
	"github.com/MarkupMedia/pagetags-go/utils/images"
)

const testSecret = "test-secret"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orig := config.SQLitePath
	config.SQLitePath = filepath.Join(t.TempDir(), "test.db")
	t.Cleanup(func() { config.SQLitePath = orig })

	db, err := store.NewDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
	})
	require.NoError(t, err)

	passwordHash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)

	handlers := NewHandlers(db, cache.NewManager(), images.NewAssetProcessor(t.TempDir()), logger)
	authHandlers := NewAuthHandlers(testSecret, passwordHash, logger)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/health", handlers.GetHealth)
	v1.POST("/auth/login", authHandlers.PostLogin)
	v1.POST("/render", handlers.PostRender)
	v1.GET("/styleguide/:id", handlers.GetStyleguide)
	v1.GET("/brand-assets/:id", handlers.GetBrandAssets)

	editor := v1.Group("")
	editor.Use(AuthRequired(testSecret))
	editor.PUT("/styleguide/:id", handlers.PutStyleguide)
	editor.PUT("/brand-assets/:id", handlers.PutBrandAssets)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	r := testRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRenderPresetOnly(t *testing.T) {
	r := testRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/render", "", gin.H{
		"markup": "<t-paragraph>hi</t-paragraph>",
	})
	require.Equal(t, http.StatusOK, w.Code)
	html, _ := body["html"].(string)
	assert.Contains(t, html, `data-type="t-paragraph"`)
	assert.Contains(t, html, "font-size: 16px")
	assert.Equal(t, false, body["cached"])

	// Second request hits the fragment cache.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/render", "", gin.H{
		"markup": "<t-paragraph>hi</t-paragraph>",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["cached"])
}

func TestRenderInlineStyleguide(t *testing.T) {
	r := testRouter(t)

	req := gin.H{
		"markup":     "<t-headline>Hi</t-headline>",
		"styleguide": json.RawMessage(`{"typography":{"baseSize":16,"scaleRatio":1.25}}`),
	}
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/render", "", req)
	require.Equal(t, http.StatusOK, w.Code)
	html, _ := body["html"].(string)
	assert.Contains(t, html, "font-size: 95px")
	assert.Equal(t, false, body["cached"])

	// Inline payloads are never cached: no version to key against.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/render", "", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["cached"])
}

func TestRenderRejectsOversizedMarkup(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/render", "", gin.H{
		"markup": strings.Repeat("a", config.MaxRenderBytes+1),
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestStyleguideLifecycle(t *testing.T) {
	r := testRouter(t)

	// Writes require authentication.
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/styleguide/site", "", `{"colors":[]}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)

	guide := `{"typography":{"baseSize":16,"scaleRatio":1.25}}`
	w, body := doJSON(t, r, http.MethodPut, "/api/v1/styleguide/site", token, guide)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["version"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/styleguide/site", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Renders against the styleguide use its typographic scale.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/render", "", gin.H{
		"markup":       "<t-headline>Hi</t-headline>",
		"styleguideId": "site",
	})
	require.Equal(t, http.StatusOK, w.Code)
	html, _ := body["html"].(string)
	assert.Contains(t, html, "font-size: 95px")

	// Updating the styleguide bumps the version and invalidates cached renders.
	w, body = doJSON(t, r, http.MethodPut, "/api/v1/styleguide/site", token, `{"typography":{"baseSize":18,"scaleRatio":1.25}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["version"])

	w, body = doJSON(t, r, http.MethodPost, "/api/v1/render", "", gin.H{
		"markup":       "<t-headline>Hi</t-headline>",
		"styleguideId": "site",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["cached"])
}

func TestPutStyleguideRejectsInvalidJSON(t *testing.T) {
	r := testRouter(t)
	token := login(t, r)
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/styleguide/site", token, `{"colors": [`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutStyleguideRejectsBadID(t *testing.T) {
	r := testRouter(t)
	token := login(t, r)
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/styleguide/bad..id", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBrandAssetsLifecycle(t *testing.T) {
	r := testRouter(t)
	token := login(t, r)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/brand-assets/site", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body := doJSON(t, r, http.MethodPut, "/api/v1/brand-assets/site", token, gin.H{
		"assets": gin.H{"logo": []string{"/media/site/logo/existing.svg"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/brand-assets/site", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assets, _ := body["assets"].(map[string]any)
	require.NotNil(t, assets)
	logo, _ := assets["logo"].([]any)
	require.Len(t, logo, 1)
	assert.Equal(t, "/media/site/logo/existing.svg", logo[0])
}

func pngDataURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestBrandAssetsBackgroundGeneratesVariants(t *testing.T) {
	r := testRouter(t)
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPut, "/api/v1/brand-assets/site", token, gin.H{
		"assets": gin.H{"background": []string{pngDataURI(t)}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assets, _ := body["assets"].(map[string]any)
	require.NotNil(t, assets)
	background, _ := assets["background"].([]any)
	require.Len(t, background, 1+len(config.BackgroundVariantWidths))

	// The original stays first so Active() keeps serving it.
	original, _ := background[0].(string)
	assert.True(t, strings.HasPrefix(original, "/media/site/background/background-0-"), original)
	variant, _ := background[1].(string)
	assert.True(t, strings.HasSuffix(variant, fmt.Sprintf("_%dpx.webp", config.BackgroundVariantWidths[0])), variant)
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/styleguide/site", "garbage", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
