package emojifall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GlyphSize is the pixel edge length of every cached symbol bitmap. One
// glyph per bitmap; emoji balls scale it down to their collision radius at
// draw time.
const GlyphSize = 32

// TextureCache rasterizes symbols to small square bitmaps and caches them by
// string key. Entries are created lazily and never evicted — the practical
// symbol alphabet of a stream is small, so the cache stays bounded in use.
//
// A single scratch image is cleared and reused for every rasterization, so
// only the cached copy allocates per new symbol.
type TextureCache struct {
	face    text.Face
	scratch *ebiten.Image
	entries map[string]*ebiten.Image
}

// NewTextureCache creates a cache that renders symbols with the given face.
// A nil face falls back to a built-in bitmap face, which renders ASCII but
// degrades emoji to blank glyphs; hosts that want real emoji pass a
// [text.GoTextFace] over an emoji-capable font.
func NewTextureCache(face text.Face) *TextureCache {
	if face == nil {
		face = text.NewGoXFace(basicfont.Face7x13)
	}
	return &TextureCache{
		face:    face,
		scratch: ebiten.NewImage(GlyphSize, GlyphSize),
		entries: make(map[string]*ebiten.Image),
	}
}

// GetTexture returns the cached bitmap for symbol, rasterizing it on first
// request. Repeated calls with the same symbol return the same image.
// Rasterization has no failure path: anything the face cannot shape comes
// out blank rather than erroring.
func (c *TextureCache) GetTexture(symbol string) *ebiten.Image {
	if img, ok := c.entries[symbol]; ok {
		return img
	}

	c.scratch.Clear()

	w, h := text.Measure(symbol, c.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((GlyphSize-w)/2, (GlyphSize-h)/2)
	text.Draw(c.scratch, symbol, c.face, op)

	// The scratch surface is reused on the next miss, so the cached entry
	// must be its own image.
	img := ebiten.NewImage(GlyphSize, GlyphSize)
	img.DrawImage(c.scratch, nil)

	c.entries[symbol] = img
	return img
}

// Len returns the number of distinct symbols rasterized so far.
func (c *TextureCache) Len() int {
	return len(c.entries)
}
