// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec errors.
var (
	// ErrUnsupportedFormat is returned when data is not in a known image format.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")
)

// Ext is the extension of files written by Save.
const Ext = ".png"

// Extensions lists the file extensions Decode understands, without dots.
var Extensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("codec: encode PNG: %w", err)
	}
	return nil
}

// EncodeToBytes returns img encoded as PNG.
func EncodeToBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads an image from r, auto-detecting its format. It returns the
// image and the format name as registered with the image package.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Save writes img as PNG to path, replacing any existing file only once the
// new contents are fully written.
func Save(path string, img image.Image) (err error) {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	// CreateTemp opens the file 0600. Keep the mode of the file being
	// replaced, or give a new file the usual 0644.
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("codec: chmod file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	if err = Encode(w, img); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("codec: write file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("codec: sync file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("codec: close file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("codec: rename file: %w", err)
	}
	return nil
}

// EnsureExt appends Ext to path unless it already ends in it, ignoring case.
func EnsureExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), Ext) {
		return path
	}
	return path + Ext
}
