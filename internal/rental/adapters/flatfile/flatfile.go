// Package flatfile stores record lines in a local text file.
package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"moviecards/internal/rental/ports/repositories"
	"moviecards/pkg/logger"
)

const (
	methodReadLines  = "File.ReadLines"
	methodWriteLines = "File.WriteLines"
)

const (
	msgFileMissing = "file does not exist"
	msgFileRead    = "file read"
	msgFileWritten = "file written"
)

const (
	errCtxOpen   = "failed to open file"
	errCtxScan   = "failed to scan file"
	errCtxCreate = "failed to create file"
	errCtxWrite  = "failed to write file"
	errCtxClose  = "failed to close file"
)

// File is a LineStorage over one path.
type File struct {
	path string
}

var _ repositories.LineStorage = (*File)(nil)

// New binds storage to path. The file is not touched until the first read or write.
func New(path string) *File {
	return &File{path: path}
}

func (f *File) Location() string {
	return f.path
}

// ReadLines returns every line without its terminator. A missing file yields nil, nil.
func (f *File) ReadLines(ctx context.Context) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodReadLines), zap.String("path", f.path))

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(ctx, msgFileMissing)
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", errCtxOpen, err)
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxScan, err)
	}

	log.Debug(ctx, msgFileRead, zap.Int("lines", len(lines)))
	return lines, nil
}

// WriteLines truncates the file and writes each line followed by "\n".
// A failure midway leaves whatever was already flushed.
func (f *File) WriteLines(ctx context.Context, lines []string) (err error) {
	log := logger.Log(ctx).With(zap.String("method", methodWriteLines), zap.String("path", f.path))

	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCreate, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%s: %w", errCtxClose, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%s: %w", errCtxWrite, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", errCtxWrite, err)
	}

	log.Debug(ctx, msgFileWritten, zap.Int("lines", len(lines)))
	return nil
}
