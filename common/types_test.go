package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG encodes a 2x1 image with a red and a green pixel.
func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// TestImportedTextureDecode tests decoding embedded image bytes to RGBA pixels.
func TestImportedTextureDecode(t *testing.T) {
	tex := ImportedTexture{Name: "strip", Data: encodePNG(t), MimeType: "image/png"}

	pix, width, height, err := tex.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if width != 2 || height != 1 {
		t.Errorf("Decode() dimensions = %dx%d, want 2x1", width, height)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Errorf("Decode() left receiver dimensions %dx%d, want 2x1", tex.Width, tex.Height)
	}
	want := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	if !bytes.Equal(pix, want) {
		t.Errorf("Decode() pixels = %v, want %v", pix, want)
	}
}

// TestImportedTextureStaging tests wrapping the decoded pixels into staging data.
func TestImportedTextureStaging(t *testing.T) {
	tex := ImportedTexture{Name: "strip", Data: encodePNG(t)}

	staging, err := tex.Staging()
	if err != nil {
		t.Fatalf("Staging() error = %v", err)
	}
	if staging.Width != 2 || staging.Height != 1 {
		t.Errorf("Staging() dimensions = %dx%d, want 2x1", staging.Width, staging.Height)
	}
	if len(staging.Pixels) != 8 {
		t.Errorf("Staging() has %d pixel bytes, want 8", len(staging.Pixels))
	}
}

// TestImportedTextureDecodeErrors tests the failure paths of Decode and
// error propagation through Staging.
func TestImportedTextureDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		tex  *ImportedTexture
	}{
		{name: "nil texture", tex: nil},
		{name: "neither data nor path", tex: &ImportedTexture{Name: "empty"}},
		{name: "undecodable bytes", tex: &ImportedTexture{Data: []byte("not an image")}},
		{name: "missing file", tex: &ImportedTexture{Path: "testdata/does-not-exist.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := tt.tex.Decode(); err == nil {
				t.Errorf("Decode() error = nil, want an error")
			}
			if tt.tex == nil {
				return
			}
			if staging, err := tt.tex.Staging(); err == nil || staging.Pixels != nil {
				t.Errorf("Staging() = %+v, %v, want empty staging data and an error", staging, err)
			}
		})
	}
}
