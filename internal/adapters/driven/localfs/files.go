// Package localfs reads local files into upload batches.
package localfs

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// MaxConcurrentReads bounds parallel file reads.
const MaxConcurrentReads = 8

// MaxFileSize is the largest file accepted for upload.
const MaxFileSize = 32 << 20

// textTypes covers extensions the mime package does not know everywhere.
var textTypes = map[string]string{
	".txt":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".csv":      "text/csv",
	".log":      "text/plain",
}

// ReadFiles reads paths concurrently. The result preserves input order.
// The first failure cancels the remaining reads.
func ReadFiles(ctx context.Context, paths []string) ([]domain.UploadFile, error) {
	out := make([]domain.UploadFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := ReadFile(path)
			if err != nil {
				return err
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile reads one regular file.
func ReadFile(path string) (domain.UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return domain.UploadFile{}, fmt.Errorf("read %s: not a regular file", path)
	}
	if info.Size() > MaxFileSize {
		return domain.UploadFile{}, fmt.Errorf("read %s: file exceeds %d bytes", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	return domain.UploadFile{
		Name:        name,
		ContentType: DetectMIMEType(name),
		Data:        data,
	}, nil
}

// DetectMIMEType returns a media type for name based on its extension,
// without parameters. Files with no extension are treated as plain text.
func DetectMIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "text/plain"
	}
	if t, ok := textTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
	}
	return "application/octet-stream"
}

// IsHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func IsHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
