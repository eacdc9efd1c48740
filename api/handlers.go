package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarkupMedia/pagetags-go/cache"
	"github.com/MarkupMedia/pagetags-go/config"
	"github.com/MarkupMedia/pagetags-go/html"
	"github.com/MarkupMedia/pagetags-go/internal/observability/logging"
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/store"
	"github.com/MarkupMedia/pagetags-go/styleguide"
	"github.com/MarkupMedia/pagetags-go/utils"
	"github.com/MarkupMedia/pagetags-go/utils/images"
)

// Handlers contains the render and styleguide management HTTP handlers
type Handlers struct {
	db     *store.DB
	cache  *cache.Manager
	assets *images.AssetProcessor
	logger *logging.ChanneledLogger
}

// NewHandlers creates handlers with injected dependencies
func NewHandlers(db *store.DB, cacheManager *cache.Manager, assets *images.AssetProcessor, logger *logging.ChanneledLogger) *Handlers {
	return &Handlers{
		db:     db,
		cache:  cacheManager,
		assets: assets,
		logger: logger,
	}
}

// RenderRequest is the body of POST /api/v1/render. A styleguide can be
// referenced by id or supplied inline; inline payloads bypass the fragment
// cache since they carry no version.
type RenderRequest struct {
	Markup       string          `json:"markup" binding:"required"`
	StyleguideID string          `json:"styleguideId"`
	Styleguide   json.RawMessage `json:"styleguide"`
	BrandAssets  json.RawMessage `json:"brandAssets"`
	NoCache      bool            `json:"noCache"`
}

// PostRender handles POST /api/v1/render - expands source markup into HTML
func (h *Handlers) PostRender(c *gin.Context) {
	start := time.Now()
	renderID := utils.GenerateULID()

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if len(req.Markup) > config.MaxRenderBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("markup exceeds %d bytes", config.MaxRenderBytes),
		})
		return
	}

	var guide *styleguide.Store
	var brand models.BrandAssets
	var styleguideVer int64

	cacheable := !req.NoCache
	if len(req.Styleguide) > 0 || len(req.BrandAssets) > 0 {
		guide = styleguide.Parse(req.Styleguide)
		brand = styleguide.ParseBrandAssets(req.BrandAssets)
		cacheable = false
	} else {
		guide, brand, styleguideVer = h.loadStyleguide(req.StyleguideID)
	}

	key := cache.Key(req.Markup, req.StyleguideID, styleguideVer)
	if cacheable {
		if frag, ok := h.cache.Get(key); ok {
			h.logger.LogCacheOperation("get", key, true)
			h.logger.LogRenderOperation(renderID, len(req.Markup), time.Since(start), true)
			c.JSON(http.StatusOK, gin.H{
				"html":       frag.HTML,
				"fonts":      frag.Fonts,
				"cached":     true,
				"durationMs": time.Since(start).Milliseconds(),
			})
			return
		}
		h.logger.LogCacheOperation("get", key, false)
	}

	pipeline := html.NewPipeline(guide, brand)
	result, err := pipeline.Render(req.Markup)
	if err != nil {
		// Degraded render: the pipeline returned the input unchanged.
		h.logger.LogError(logging.ChannelRender, "render", err, map[string]any{
			"inputBytes": len(req.Markup),
		})
	}

	if cacheable && err == nil {
		h.cache.Set(key, &models.RenderedFragment{
			HTML:          result.HTML,
			Fonts:         result.Fonts,
			StyleguideID:  req.StyleguideID,
			StyleguideVer: styleguideVer,
			CachedAt:      time.Now().UTC(),
		})
	}

	h.logger.LogRenderOperation(renderID, len(req.Markup), time.Since(start), false)
	c.JSON(http.StatusOK, gin.H{
		"html":       result.HTML,
		"fonts":      result.Fonts,
		"cached":     false,
		"durationMs": time.Since(start).Milliseconds(),
	})
}

// loadStyleguide fetches the styleguide and brand assets for a render. Any
// failure degrades to preset-only resolution rather than blocking the render.
func (h *Handlers) loadStyleguide(id string) (*styleguide.Store, models.BrandAssets, int64) {
	if id == "" {
		return styleguide.Empty(), nil, 0
	}

	payload, version, err := h.db.GetStyleguide(id)
	if err != nil {
		h.logger.LogError(logging.ChannelDatabase, "load_styleguide", err, map[string]any{"styleguideId": id})
		return styleguide.Empty(), nil, 0
	}
	if payload == nil {
		return styleguide.Empty(), nil, 0
	}

	guide := styleguide.Parse(payload)

	var brand models.BrandAssets
	if brandPayload, err := h.db.GetBrandAssets(id); err == nil && brandPayload != nil {
		brand = styleguide.ParseBrandAssets(brandPayload)
	}

	return guide, brand, version
}

// PutStyleguide handles PUT /api/v1/styleguide/:id - stores a styleguide payload
func (h *Handlers) PutStyleguide(c *gin.Context) {
	id := c.Param("id")
	if !validResourceID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid styleguide id"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty payload"})
		return
	}

	// Reject bodies that are not JSON at all. Structurally unexpected but
	// well-formed JSON is accepted; resolution degrades per field at render
	// time instead of failing the save.
	if !json.Valid(payload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is not valid JSON"})
		return
	}

	version, err := h.db.SaveStyleguide(id, payload)
	if err != nil {
		h.logger.LogError(logging.ChannelDatabase, "save_styleguide", err, map[string]any{"styleguideId": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save styleguide"})
		return
	}

	h.cache.InvalidateStyleguide(id)
	h.logger.Styleguide().Info("Styleguide saved", "styleguideId", id, "version", version)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"id":      id,
		"version": version,
	})
}

// GetStyleguide handles GET /api/v1/styleguide/:id
func (h *Handlers) GetStyleguide(c *gin.Context) {
	id := c.Param("id")

	payload, version, err := h.db.GetStyleguide(id)
	if err != nil {
		h.logger.LogError(logging.ChannelDatabase, "load_styleguide", err, map[string]any{"styleguideId": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load styleguide"})
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "styleguide not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"version":    version,
		"styleguide": json.RawMessage(payload),
	})
}

// BrandAssetsRequest is the body of PUT /api/v1/brand-assets/:id. Each asset
// type carries base64 data URIs to ingest, or already-served URL paths to
// keep as-is.
type BrandAssetsRequest struct {
	Assets map[string][]string `json:"assets" binding:"required"`
}

// PutBrandAssets handles PUT /api/v1/brand-assets/:id - ingests brand images
func (h *Handlers) PutBrandAssets(c *gin.Context) {
	id := c.Param("id")
	if !validResourceID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand asset id"})
		return
	}

	var req BrandAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	previous := h.previousBrandAssets(id)

	stored := make(models.BrandAssets, len(req.Assets))
	for assetType, entries := range req.Assets {
		subdir := id + "/" + assetType
		urls := make([]string, 0, len(entries))
		for i, entry := range entries {
			if !strings.HasPrefix(entry, "data:image/") {
				urls = append(urls, entry)
				continue
			}
			var url string
			var err error
			if wantsVariants(assetType) {
				// Full-bleed assets are versioned so stale files and their
				// renditions get cleaned up on re-upload.
				base := fmt.Sprintf("%s-%d", assetType, i)
				url, _, err = h.assets.ProcessVersionedAsset(entry, base, subdir, assetVersion(previous[assetType], base))
			} else {
				url, err = h.assets.ProcessBase64Asset(entry, utils.GenerateULID(), subdir)
			}
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("failed to process %s asset: %v", assetType, err),
				})
				return
			}
			urls = append(urls, url)

			if wantsVariants(assetType) && !strings.HasPrefix(entry, "data:image/svg") {
				variants, err := h.assets.GenerateVariants(h.assets.SourcePath(url), subdir, config.BackgroundVariantWidths)
				if err != nil {
					// The original still serves; renditions are an optimization.
					h.logger.LogError(logging.ChannelSystem, "generate_variants", err, map[string]any{
						"brandAssetId": id, "assetType": assetType,
					})
				} else {
					urls = append(urls, variants...)
				}
			}
		}
		stored[assetType] = urls
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode brand assets"})
		return
	}

	if err := h.db.SaveBrandAssets(id, payload); err != nil {
		h.logger.LogError(logging.ChannelDatabase, "save_brand_assets", err, map[string]any{"brandAssetId": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save brand assets"})
		return
	}

	h.cache.InvalidateStyleguide(id)
	h.logger.Styleguide().Info("Brand assets saved", "brandAssetId", id, "types", len(stored))

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"id":     id,
		"assets": stored,
	})
}

// previousBrandAssets returns the currently stored assets for an id, or nil.
// Used to recover prior upload versions so stale files get cleaned up.
func (h *Handlers) previousBrandAssets(id string) models.BrandAssets {
	payload, err := h.db.GetBrandAssets(id)
	if err != nil || payload == nil {
		return nil
	}
	return styleguide.ParseBrandAssets(payload)
}

// wantsVariants reports whether an asset type is rendered full-bleed and so
// worth responsive WebP renditions.
func wantsVariants(assetType string) bool {
	return assetType == "background" || assetType == "pattern"
}

var assetVersionPattern = regexp.MustCompile(`-(\d+)\.\w+$`)

// assetVersion recovers the timestamp version from a stored URL for the given
// base filename. Variant URLs end in a width suffix and never match.
func assetVersion(urls []string, base string) int64 {
	for _, u := range urls {
		name := path.Base(u)
		if !strings.HasPrefix(name, base+"-") {
			continue
		}
		if m := assetVersionPattern.FindStringSubmatch(name); m != nil {
			v, _ := strconv.ParseInt(m[1], 10, 64)
			return v
		}
	}
	return 0
}

// GetBrandAssets handles GET /api/v1/brand-assets/:id
func (h *Handlers) GetBrandAssets(c *gin.Context) {
	id := c.Param("id")

	payload, err := h.db.GetBrandAssets(id)
	if err != nil {
		h.logger.LogError(logging.ChannelDatabase, "load_brand_assets", err, map[string]any{"brandAssetId": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load brand assets"})
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand assets not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"assets": json.RawMessage(payload),
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handlers) GetHealth(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if err := h.db.Conn.Ping(); err != nil {
		status = "degraded"
		dbStatus = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          status,
		"database":        dbStatus,
		"cachedFragments": h.cache.Len(),
	})
}

// validResourceID limits path ids to slug-safe characters so they can double
// as media subdirectory names.
func validResourceID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
