package renderer

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"GopherFX/internal/effects"
	"GopherFX/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const placeholderName = "placeholder:white"

type TextureStats struct {
	TotalTextures  int // uploads over the manager's lifetime
	CacheHits      int
	CacheMisses    int
	ActiveTextures int
}

// textureEntry is one uploaded texture shared by every user of its name.
type textureEntry struct {
	name   string
	ref    effects.TextureRef
	refs   int
	pinned bool // owned by the manager, only Clear frees it
}

// TextureManager shares GL textures between effects and the host. Textures
// are keyed by file path or generated name and freed when the last user
// releases them.
type TextureManager struct {
	mu      sync.RWMutex
	byName  map[string]*textureEntry
	byID    map[uint32]*textureEntry
	hits    int
	misses  int
	uploads int

	// GL entry points, replaceable so bookkeeping can be tested headless.
	upload  func(rgba *image.RGBA) uint32
	destroy func(id uint32)
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		byName:  make(map[string]*textureEntry),
		byID:    make(map[uint32]*textureEntry),
		upload:  uploadRGBA,
		destroy: func(id uint32) { gl.DeleteTextures(1, &id) },
	}
}

// LoadTexture returns the texture for an image file, decoding and uploading
// it on first use. Every successful call must be paired with ReleaseTexture.
func (tm *TextureManager) LoadTexture(filePath string) (effects.TextureRef, error) {
	if ref, ok := tm.acquire(filePath); ok {
		return ref, nil
	}

	img, err := decodeImageFile(filePath)
	if err != nil {
		return effects.TextureRef{}, err
	}
	return tm.CreateTextureFromImage(img, filePath)
}

// CreateTextureFromImage uploads img under name, or shares the texture
// already known by that name.
func (tm *TextureManager) CreateTextureFromImage(img image.Image, name string) (effects.TextureRef, error) {
	return tm.insert(img, name, false)
}

// Placeholder returns the shared 1x1 white texture. It is pinned: releases by
// effects never free it.
func (tm *TextureManager) Placeholder() effects.TextureRef {
	tm.mu.RLock()
	entry, exists := tm.byName[placeholderName]
	tm.mu.RUnlock()
	if exists {
		return entry.ref
	}

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	ref, err := tm.insert(img, placeholderName, true)
	if err != nil {
		logger.Log.Error("Failed to create placeholder texture", zap.Error(err))
	}
	return ref
}

func (tm *TextureManager) insert(img image.Image, name string, pinned bool) (effects.TextureRef, error) {
	if ref, ok := tm.acquire(name); ok {
		return ref, nil
	}

	rgba := toRGBA(img)
	size := rgba.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return effects.TextureRef{}, fmt.Errorf("texture %q: empty image", name)
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Another caller may have uploaded the same name while we converted.
	if entry, exists := tm.byName[name]; exists {
		entry.refs++
		tm.hits++
		return entry.ref, nil
	}

	id := tm.upload(rgba)
	if id == 0 {
		return effects.TextureRef{}, fmt.Errorf("texture %q: upload failed", name)
	}
	entry := &textureEntry{
		name:   name,
		ref:    effects.TextureRef{ID: id, Width: size.X, Height: size.Y},
		refs:   1,
		pinned: pinned,
	}
	tm.byName[name] = entry
	tm.byID[id] = entry
	tm.misses++
	tm.uploads++

	logger.Log.Info("Texture uploaded",
		zap.String("name", name),
		zap.Uint32("textureID", id),
		zap.Int("width", size.X),
		zap.Int("height", size.Y))
	return entry.ref, nil
}

func (tm *TextureManager) acquire(name string) (effects.TextureRef, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	entry, exists := tm.byName[name]
	if !exists {
		return effects.TextureRef{}, false
	}
	entry.refs++
	tm.hits++
	logger.Log.Debug("Texture shared", zap.String("name", name), zap.Int("refs", entry.refs))
	return entry.ref, true
}

// ReleaseTexture drops one reference; the texture is freed with the last one.
// Zero IDs and pinned textures are ignored.
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	entry, exists := tm.byID[textureID]
	if !exists {
		logger.Log.Warn("Release of unknown texture", zap.Uint32("textureID", textureID))
		return
	}
	if entry.pinned {
		return
	}

	entry.refs--
	if entry.refs > 0 {
		return
	}
	tm.destroy(textureID)
	delete(tm.byName, entry.name)
	delete(tm.byID, textureID)
	logger.Log.Info("Texture freed", zap.Uint32("textureID", textureID), zap.String("name", entry.name))
}

func (tm *TextureManager) GetStats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return TextureStats{
		TotalTextures:  tm.uploads,
		CacheHits:      tm.hits,
		CacheMisses:    tm.misses,
		ActiveTextures: len(tm.byID),
	}
}

func (tm *TextureManager) LogStats() {
	stats := tm.GetStats()
	hitRate := 0.0
	if total := stats.CacheHits + stats.CacheMisses; total > 0 {
		hitRate = float64(stats.CacheHits) / float64(total)
	}
	logger.Log.Info("Texture usage",
		zap.Int("uploaded", stats.TotalTextures),
		zap.Int("active", stats.ActiveTextures),
		zap.Float64("hitRate", hitRate))
}

// Clear frees every texture, pinned ones included. Call it once the GL
// context is about to go away.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for id := range tm.byID {
		tm.destroy(id)
	}
	freed := len(tm.byID)
	tm.byName = make(map[string]*textureEntry)
	tm.byID = make(map[uint32]*textureEntry)
	logger.Log.Info("Textures cleared", zap.Int("freed", freed))
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.Log.Debug("Image decoded", zap.String("path", path), zap.String("format", format))
	return img, nil
}

// toRGBA returns img as a tightly packed RGBA image with a zero origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba
}

// uploadRGBA creates a repeating, linearly filtered texture; effect textures
// such as the paper grain and noise map tile across the screen.
func uploadRGBA(rgba *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	size := rgba.Rect.Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	for _, p := range [][2]uint32{
		{gl.TEXTURE_MIN_FILTER, gl.LINEAR},
		{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
		{gl.TEXTURE_WRAP_S, gl.REPEAT},
		{gl.TEXTURE_WRAP_T, gl.REPEAT},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, p[0], int32(p[1]))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
