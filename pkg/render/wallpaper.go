package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// WallpaperFileName is the canonical output file inside the state dir.
const WallpaperFileName = "current_wallpaper.png"

// SaveWallpaper writes the image as a PNG. An empty path writes the
// canonical file inside dir. It returns the path written.
func SaveWallpaper(img image.Image, dir, path string) (string, error) {
	if path == "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("create wallpaper dir: %w", err)
		}
		path = filepath.Join(dir, WallpaperFileName)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("write wallpaper: %w", err)
	}
	return path, nil
}

// Preview downscales the wallpaper to fit within maxWidth×maxHeight,
// preserving aspect ratio.
func Preview(img image.Image, maxWidth, maxHeight int) image.Image {
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
