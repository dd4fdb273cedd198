package window

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/png" // PNG decoder for textures
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Texture is an image loaded from the assets directory.
type Texture struct {
	img *ebiten.Image
}

// Size returns the image size in pixels.
func (t *Texture) Size() (w, h int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Font is a TrueType face source loaded from the assets directory.
type Font struct {
	name string
	src  *text.GoTextFaceSource
}

func (f *Font) Name() string { return f.name }

// Assets holds the textures and fonts found under an assets directory:
//
//	<dir>/images/<name>.png
//	<dir>/fonts/<name>.ttf
//
// Names are file names without extension. Anything missing is simply absent.
type Assets struct {
	textures map[string]*Texture
	fonts    map[string]*Font
}

// LoadAssets reads every image and font under dir. A missing directory
// yields empty assets. Files that fail to decode are logged and skipped.
func LoadAssets(dir string, logger *log.Logger) *Assets {
	a := &Assets{
		textures: make(map[string]*Texture),
		fonts:    make(map[string]*Font),
	}
	if dir == "" {
		return a
	}

	for name, path := range listFiles(filepath.Join(dir, "images"), ".png", logger) {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("skip texture", "path", path, "err", err)
			continue
		}
		a.textures[name] = &Texture{img: img}
	}

	for name, path := range listFiles(filepath.Join(dir, "fonts"), ".ttf", logger) {
		src, err := loadFace(path)
		if err != nil {
			logger.Warn("skip font", "path", path, "err", err)
			continue
		}
		a.fonts[name] = &Font{name: name, src: src}
	}

	logger.Debug("assets loaded", "dir", dir, "textures", len(a.textures), "fonts", len(a.fonts))
	return a
}

func (a *Assets) Texture(name string) (core.Texture, bool) {
	t, ok := a.textures[name]
	if !ok {
		return nil, false
	}
	return t, true
}

func (a *Assets) Font(name string) (core.Font, bool) {
	f, ok := a.fonts[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// listFiles maps base names to paths for files in dir with the given
// extension.
func listFiles(dir, ext string, logger *log.Logger) map[string]string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("read assets", "dir", dir, "err", err)
		}
		return nil
	}
	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		files[strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))] = filepath.Join(dir, e.Name())
	}
	return files
}

func loadFace(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: read font %s: %w", path, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: parse font %s: %w", path, err)
	}
	return src, nil
}

// fallbackFace returns the built-in Go Regular face.
func fallbackFace() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load fallback font: %w", err)
	}
	return src, nil
}
