package emojifall

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTextureCache_SameSymbolReturnsSameHandle(t *testing.T) {
	c := NewTextureCache(nil)

	first := c.GetTexture("A")
	second := c.GetTexture("A")

	if first == nil {
		t.Fatal("GetTexture returned nil")
	}
	if first != second {
		t.Error("repeated GetTexture for one symbol returned different handles")
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestTextureCache_DistinctSymbolsGetDistinctEntries(t *testing.T) {
	c := NewTextureCache(nil)

	symbols := []string{"A", "B", "*", "@", "🔥"}
	seen := make(map[*ebiten.Image]string)
	for _, s := range symbols {
		img := c.GetTexture(s)
		if img == nil {
			t.Fatalf("GetTexture(%q) returned nil", s)
		}
		if prev, dup := seen[img]; dup {
			t.Errorf("GetTexture(%q) shares a handle with %q", s, prev)
		}
		seen[img] = s
	}
	if got := c.Len(); got != len(symbols) {
		t.Errorf("Len() = %d, want %d", got, len(symbols))
	}
}

func TestTextureCache_GlyphDimensions(t *testing.T) {
	c := NewTextureCache(nil)

	img := c.GetTexture("W")
	b := img.Bounds()
	if b.Dx() != GlyphSize || b.Dy() != GlyphSize {
		t.Errorf("glyph bitmap is %dx%d, want %dx%d", b.Dx(), b.Dy(), GlyphSize, GlyphSize)
	}
}

// The fallback face cannot shape emoji; those symbols must still come back
// as cached (blank) bitmaps rather than failing.
func TestTextureCache_UnrenderableSymbolDegradesToBlank(t *testing.T) {
	c := NewTextureCache(nil)

	img := c.GetTexture("🎉")
	if img == nil {
		t.Fatal("GetTexture for an unrenderable symbol returned nil")
	}
	if again := c.GetTexture("🎉"); again != img {
		t.Error("unrenderable symbol was not cached")
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}
