package filestorage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
)

// Bounding boxes per upload category. Images are shrunk to fit while
// keeping aspect ratio; smaller images are stored untouched.
var categoryBounds = map[string]struct{ Width, Height int }{
	"partners":    {400, 400},
	"leaders":     {800, 800},
	"events":      {1600, 900},
	"news":        {1600, 900},
	"projects":    {1600, 900},
	"hero":        {1920, 1080},
	"gallery":     {1600, 1200},
	"sessions":    {1600, 1200},
	"communities": {600, 600},
	"site":        {1920, 1080},
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// LocalStorage saves uploads under category subdirectories of a base
// path and hands back URLs below the configured base URL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended to returned file paths so clients get fetchable URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// KnownCategory reports whether the category has a configured bounding box.
func KnownCategory(category string) bool {
	_, ok := categoryBounds[category]
	return ok
}

// SaveImage stores an uploaded image under the category subdirectory
// with a collision-free filename, resizing it into the category's
// bounding box. Non-image files are rejected.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, category string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	bounds, ok := categoryBounds[category]
	if !ok {
		return "", fmt.Errorf("unknown upload category: %s", category)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Fit keeps aspect ratio and never upscales past the original.
	resized := imaging.Fit(img, bounds.Width, bounds.Height, imaging.Lanczos)

	dirPath := filepath.Join(ls.basePath, category)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create category directory")
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, uniqueFilename)

	if err := imaging.Save(resized, dstPath); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to save resized image")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	accessiblePath := strings.TrimRight(ls.baseURL, "/") + "/" + category + "/" + uniqueFilename

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", uniqueFilename).
		Str("category", category).
		Msg("Image saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file given the URL or path previously
// returned by SaveImage. Deleting a missing file is not an error.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	category := filepath.Base(filepath.Dir(fileURL))
	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if KnownCategory(category) {
		physicalPath = filepath.Join(ls.basePath, category, filename)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
