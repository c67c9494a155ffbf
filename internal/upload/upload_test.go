package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 128, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func TestSavePreservesExtension(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(bytes.NewReader([]byte("data")), "photo.jpg", dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected .jpg extension, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected stored file to exist: %v", err)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	dir := t.TempDir()

	a, err := Save(bytes.NewReader([]byte("one")), "photo.png", dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := Save(bytes.NewReader([]byte("two")), "photo.png", dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Errorf("expected unique paths, both were %q", a)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()

	big := bytes.Repeat([]byte{0xff}, MaxBytes+1)
	_, err := Save(bytes.NewReader(big), "big.jpg", dir)
	if err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	// Nothing may be left behind.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected empty dir after rejected upload, found %d files", len(entries))
	}
}

func TestResizeInPlace(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(bytes.NewReader(createTestJPEG(1600, 400)), "wide.jpg", dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := ResizeInPlace(path); err != nil {
		t.Fatalf("ResizeInPlace: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading resized file: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding resized file: %v", err)
	}
	if img.Bounds().Dx() > 800 {
		t.Errorf("expected width <= 800, got %d", img.Bounds().Dx())
	}

	// The sibling temp file must not survive the swap.
	if _, err := os.Stat(path + "-resized"); !os.IsNotExist(err) {
		t.Error("expected -resized sibling to be renamed away")
	}
}

func TestResizeInPlaceRejectsNonImage(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(strings.NewReader("definitely not an image"), "bad.jpg", dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := ResizeInPlace(path); err == nil {
		t.Fatal("expected error for non-image upload")
	}

	// The original stays for the caller to clean up.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected original to remain after failed resize: %v", err)
	}
}

func TestRemoveMissingFileIsQuiet(t *testing.T) {
	// Must not panic or log spuriously for already-gone files.
	Remove(filepath.Join(t.TempDir(), "gone.jpg"))
	Remove("")
}
