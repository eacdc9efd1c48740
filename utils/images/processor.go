// Package images ingests uploaded brand assets and produces the variants
// referenced by rendered markup.
package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// AssetProcessor handles brand-asset file operations under a media root.
type AssetProcessor struct {
	basePath string
}

// NewAssetProcessor creates a new AssetProcessor instance
func NewAssetProcessor(basePath string) *AssetProcessor {
	return &AssetProcessor{
		basePath: basePath,
	}
}

// ProcessBase64Asset handles any base64 image upload with automatic format detection.
// Returns the relative URL the asset is served from.
func (p *AssetProcessor) ProcessBase64Asset(data, filename, subdir string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	fullFilename := fmt.Sprintf("%s.%s", filename, ext)

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	var err error
	if strings.Contains(data, "image/svg+xml") {
		_, err = processSVG(data, fullFilename, targetDir)
	} else {
		_, err = processBinaryImage(data, fullFilename, targetDir)
	}
	if err != nil {
		return "", err
	}

	return assetURL(subdir, fullFilename), nil
}

// ProcessVersionedAsset handles uploads with timestamp versioning and cleanup
// of the previous version. Returns relative URL path and the new version.
func (p *AssetProcessor) ProcessVersionedAsset(data, baseFilename, subdir string, currentVersion int64) (string, int64, error) {
	if data == "" {
		return "", 0, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", 0, fmt.Errorf("unsupported image format")
	}

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directory: %w", err)
	}

	if currentVersion > 0 {
		deleteVersionedFile(baseFilename, currentVersion, targetDir)
	}

	newVersion := time.Now().Unix()
	versionedFilename := fmt.Sprintf("%s-%d.%s", baseFilename, newVersion, ext)

	var err error
	if strings.Contains(data, "image/svg+xml") {
		_, err = processSVG(data, versionedFilename, targetDir)
	} else {
		_, err = processBinaryImage(data, versionedFilename, targetDir)
	}
	if err != nil {
		return "", 0, err
	}

	return assetURL(subdir, versionedFilename), newVersion, nil
}

// GenerateVariants produces resized WebP renditions of a stored asset for
// responsive section backgrounds. Returns relative URLs, widest first.
func (p *AssetProcessor) GenerateVariants(sourcePath, subdir string, widths []int) ([]string, error) {
	img, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	basename := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	urls := make([]string, 0, len(widths))
	written := make([]string, 0, len(widths))

	for _, width := range widths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)
		variantFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		variantPath := filepath.Join(targetDir, variantFilename)

		if err := webp.Save(variantPath, resized, &webp.Options{Quality: 85}); err != nil {
			for _, path := range written {
				os.Remove(path)
			}
			return nil, fmt.Errorf("failed to save webp variant %s: %w", variantFilename, err)
		}

		written = append(written, variantPath)
		urls = append(urls, assetURL(subdir, variantFilename))
	}

	return urls, nil
}

// SourcePath maps a served asset URL back to its location under the media root.
func (p *AssetProcessor) SourcePath(url string) string {
	return filepath.Join(p.basePath, strings.TrimPrefix(url, "/media/"))
}

// processSVG handles SVG-specific base64 processing
func processSVG(data, filename, targetDir string) (string, error) {
	svgPattern := regexp.MustCompile(`^data:image/svg\+xml;base64,`)
	if !svgPattern.MatchString(data) {
		return "", fmt.Errorf("invalid SVG base64 format")
	}

	b64Data := svgPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write SVG file: %w", err)
	}

	return fullPath, nil
}

// processBinaryImage handles binary image processing (PNG, JPG, ICO, WebP)
func processBinaryImage(data, filename, targetDir string) (string, error) {
	binaryPattern := regexp.MustCompile(`^data:image/\w+;base64,`)
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/svg+xml"):
		return "svg"
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/x-icon"), strings.Contains(data, "data:image/vnd.microsoft.icon"):
		return "ico"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	return "png"
}

// deleteVersionedFile cleans up old versioned files before new upload
func deleteVersionedFile(baseFilename string, version int64, targetDir string) {
	extensions := []string{"svg", "png", "jpg", "jpeg", "ico", "webp"}

	for _, ext := range extensions {
		oldFilename := fmt.Sprintf("%s-%d.%s", baseFilename, version, ext)
		os.Remove(filepath.Join(targetDir, oldFilename))
	}

	// WebP renditions derived from the old version go with it.
	variants, _ := filepath.Glob(filepath.Join(targetDir, fmt.Sprintf("%s-%d_*px.webp", baseFilename, version)))
	for _, old := range variants {
		os.Remove(old)
	}
}

func assetURL(subdir, filename string) string {
	relative := filepath.Join("/media", subdir, filename)
	return strings.ReplaceAll(relative, "\\", "/")
}
