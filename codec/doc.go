// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package codec reads and writes canvas images.
//
// Images are always written as PNG. Reading auto-detects PNG, JPEG, GIF,
// BMP, TIFF and WebP, so pictures from other programs can be opened for
// painting over.
//
// Save writes through a temporary file in the destination directory and
// renames it into place, so a failed save never leaves a truncated file
// behind.
package codec
