package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestResizeJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Resize(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Resize JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestResizePNGKeepsFormat(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Resize(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Resize PNG: %v", err)
	}
	if result.MIME != "image/png" {
		t.Errorf("expected image/png (format preserved), got %s", result.MIME)
	}
}

func TestResizeDownscalesWideImage(t *testing.T) {
	data := createTestJPEG(1600, 400)
	result, err := Resize(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Resize wide image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != MaxWidth {
		t.Errorf("expected width %d, got %d", MaxWidth, bounds.Dx())
	}
	// 1600x400 scaled to 800 wide keeps the 4:1 aspect ratio.
	if bounds.Dy() != 200 {
		t.Errorf("expected height 200, got %d", bounds.Dy())
	}
}

func TestResizeTallImageUntouched(t *testing.T) {
	// Height over 800 is fine as long as the width is within bounds.
	data := createTestJPEG(400, 1200)
	result, err := Resize(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Resize tall image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 1200 {
		t.Errorf("tall-but-narrow image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	result, err := Resize(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Resize small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeInvalidFormat(t *testing.T) {
	_, err := Resize(bytes.NewReader([]byte("not an image")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
