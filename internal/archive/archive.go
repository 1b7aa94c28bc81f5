// Package archive implements the compress/decompress file transforms of the
// command surface. These are pure byte-stream utilities with no knowledge of
// the document model.
package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// Compress gzips the file at inPath into outPath.
func Compress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return fmt.Errorf("compress %s: %w", inPath, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compress %s: %w", inPath, err)
	}
	return out.Close()
}

// Decompress inflates the gzip file at inPath into outPath.
func Decompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}
	defer gz.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, gz); err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}
	return out.Close()
}
