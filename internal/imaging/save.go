package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrEncode wraps every failure to encode or write an output image.
var ErrEncode = errors.New("encode failure")

// Save encodes img to path in the format implied by its extension
// (jpg, jpeg, png, gif, tif, tiff or bmp).
//
// The image is written to a temporary file in the destination directory and
// renamed over path only once encoding has succeeded. On failure nothing is
// left at path and the temporary file is removed. An existing file at path is
// replaced only on success.
func Save(img image.Image, path string) (err error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", ErrEncode, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, format); err != nil {
		return fmt.Errorf("%w: failed to encode %s image: %w", ErrEncode, format, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrEncode, path, err)
	}
	return nil
}
