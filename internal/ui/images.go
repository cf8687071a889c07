package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/logging"
	"go-lane-defense/pkg/render"
)

// ImageManager loads sprites from an asset directory, one PNG per logical
// name ("general/Sun" -> <dir>/general/Sun.png). Missing files are replaced by
// flat placeholders of the catalog size.
type ImageManager struct {
	dir     string
	catalog *assets.Catalog
	palette *render.Palette
	logger  *logging.Logger
	images  map[string]*ebiten.Image
	fake    map[string]bool
}

func NewImageManager(dir string, catalog *assets.Catalog, logger *logging.Logger) *ImageManager {
	return &ImageManager{
		dir:     dir,
		catalog: catalog,
		palette: render.DefaultPalette(),
		logger:  logger,
		images:  make(map[string]*ebiten.Image),
		fake:    make(map[string]bool),
	}
}

// Path returns the file a logical image name is loaded from.
func (m *ImageManager) Path(name string) string {
	return filepath.Join(m.dir, filepath.FromSlash(name)+".png")
}

// Preload loads every catalog image and records the real natural sizes in the
// catalog. Must run before the first session is created so collision math
// uses the sizes of the files on disk.
func (m *ImageManager) Preload() (loaded, placeholders int, err error) {
	for _, name := range m.catalog.Names() {
		ok, loadErr := m.load(name)
		if loadErr != nil {
			return loaded, placeholders, loadErr
		}
		if ok {
			loaded++
		} else {
			placeholders++
		}
	}
	m.logger.Info("sprites ready", "dir", m.dir, "loaded", loaded, "placeholders", placeholders)
	return loaded, placeholders, nil
}

func (m *ImageManager) load(name string) (bool, error) {
	path := m.Path(name)
	if m.dir != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return false, fmt.Errorf("failed to load sprite %s: %w", path, err)
			}
			b := img.Bounds()
			m.catalog.Set(name, component.Size{Width: float64(b.Dx()), Height: float64(b.Dy())})
			m.images[name] = img
			return true, nil
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return false, fmt.Errorf("failed to stat sprite %s: %w", path, statErr)
		}
	}
	m.images[name] = m.placeholder(name)
	return false, nil
}

func (m *ImageManager) placeholder(name string) *ebiten.Image {
	size, _ := m.catalog.Size(name)
	w, h := max(int(size.Width), 1), max(int(size.Height), 1)
	img := ebiten.NewImage(w, h)
	img.Fill(m.palette.Color(name))
	m.fake[name] = true
	return img
}

// Image returns the sprite for name, creating a placeholder on first use.
func (m *ImageManager) Image(name string) *ebiten.Image {
	if img, ok := m.images[name]; ok {
		return img
	}
	img := m.placeholder(name)
	m.images[name] = img
	return img
}

// IsPlaceholder reports whether name is drawn as a flat placeholder.
func (m *ImageManager) IsPlaceholder(name string) bool {
	return m.fake[name]
}
