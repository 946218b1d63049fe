package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngPoster(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResizeImage(t *testing.T) {
	svc := NewImageService()

	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"portrait poster", 50, 100, 30, 30, 15, 30},
		{"landscape", 100, 50, 30, 30, 30, 15},
		{"already small", 20, 10, 30, 30, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ResizeImage(context.Background(), pngPoster(t, tt.w, tt.h), tt.maxW, tt.maxH)
			if err != nil {
				t.Fatalf("ResizeImage() error = %v", err)
			}
			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not JPEG: %v", err)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeImageErrors(t *testing.T) {
	svc := NewImageService()

	if _, err := svc.ResizeImage(context.Background(), []byte("not an image"), 10, 10); err == nil {
		t.Error("expected decode error")
	}
	if _, err := svc.ResizeImage(context.Background(), pngPoster(t, 4, 4), 0, 10); err == nil {
		t.Error("expected bounds error")
	}
}

func TestConvertToJPEG(t *testing.T) {
	svc := NewImageService()
	out, err := svc.ConvertToJPEG(context.Background(), pngPoster(t, 8, 8))
	if err != nil {
		t.Fatalf("ConvertToJPEG() error = %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("output is not JPEG: %v", err)
	}
}
