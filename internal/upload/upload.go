// Package upload stores incoming photos on disk and swaps in their resized
// versions. Files live in a flat uploads directory under generated names.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Deblish/fridge-app/internal/imaging"
)

// MaxBytes is the upload size cap.
const MaxBytes = 5 << 20

// ErrTooLarge is returned when an uploaded file exceeds MaxBytes.
var ErrTooLarge = errors.New("uploaded file exceeds the 5 MB limit")

// Save writes an uploaded file into dir under a unique name (millisecond
// timestamp plus a random suffix), preserving the original extension.
// Returns the path of the stored file.
func Save(r io.Reader, originalName, dir string) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, MaxBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		Remove(path)
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	if written > MaxBytes {
		Remove(path)
		return "", ErrTooLarge
	}

	return path, nil
}

// ResizeInPlace resizes the stored image at path to the standard maximum
// width. The resized data is written to a sibling path first and then renamed
// over the original, so the final path never holds a partially-written file.
// On failure the original is left in place for the caller to clean up.
func ResizeInPlace(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening upload: %w", err)
	}
	result, err := imaging.Resize(f)
	f.Close()
	if err != nil {
		return err
	}

	resized := path + "-resized"
	if err := os.WriteFile(resized, result.Data, 0o644); err != nil {
		return fmt.Errorf("writing resized image: %w", err)
	}

	if err := os.Remove(path); err != nil {
		Remove(resized)
		return fmt.Errorf("removing original image: %w", err)
	}
	if err := os.Rename(resized, path); err != nil {
		return fmt.Errorf("renaming resized image: %w", err)
	}

	return nil
}

// Remove deletes a stored file, best effort. Failures are logged, never
// returned, so cleanup can't mask the error actually being reported.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove upload", "path", path, "error", err)
	}
}
