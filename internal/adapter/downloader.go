package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

const (
	tempFilePrefix = ".widget-tmp-"
	maxNameSuffix  = 1000
)

type fileDownloader struct {
	dir    string
	logger *logger.Logger
}

// NewFileDownloader returns a Downloader writing into dir, created on first
// use. A taken name gets a " (n)" suffix before its extension.
func NewFileDownloader(dir string, logger *logger.Logger) Downloader {
	return &fileDownloader{dir: dir, logger: logger}
}

func (d *fileDownloader) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return "", ErrEmptyFileName
	}
	if strings.ContainsAny(fileName, `/\`) || fileName == "." || fileName == ".." {
		return "", ErrUnsafeFileName
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		d.logger.Err(err).Str("func", "fileDownloader.Save").Str("dir", d.dir).Msg("error creating export directory")
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	tmp, err := d.writeTemp(data)
	if err != nil {
		d.logger.Err(err).Str("func", "fileDownloader.Save").Msg("error writing export payload")
		return "", err
	}
	defer os.Remove(tmp)

	target, err := d.freePath(fileName)
	if err != nil {
		return "", err
	}
	if err = os.Rename(tmp, target); err != nil {
		d.logger.Err(err).Str("func", "fileDownloader.Save").Str("path", target).Msg("error moving export into place")
		return "", fmt.Errorf("error moving export into place: %w", err)
	}

	d.logger.Info().Str("func", "fileDownloader.Save").Str("path", target).Int("size", len(data)).Msg("export written")
	return target, nil
}

// writeTemp writes data to a synced temporary file inside the export
// directory so the final rename stays on one file system.
func (d *fileDownloader) writeTemp(data []byte) (string, error) {
	f, err := os.CreateTemp(d.dir, tempFilePrefix+"*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to chmod temp file: %w", err)
	}

	return f.Name(), nil
}

// freePath returns the first of "name.ext", "name (1).ext", ... that does
// not exist yet.
func (d *fileDownloader) freePath(fileName string) (string, error) {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)

	for n := 0; n < maxNameSuffix; n++ {
		candidate := fileName
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, n, ext)
		}
		path := filepath.Join(d.dir, candidate)

		_, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("error checking %s: %w", path, err)
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoFreeName, fileName)
}
