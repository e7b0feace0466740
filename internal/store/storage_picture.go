package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
)

// filePictureStorage is the local file system implementation of
// [PictureStorage]. Pictures are written to dir under generated names and
// served by the HTTP layer under /uploads. The stored reference is the bare
// file name.
type filePictureStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFilePictureStorage constructs a [PictureStorage] rooted at dir, creating
// the directory when it does not exist yet.
func NewFilePictureStorage(dir string, logger *logger.Logger) (PictureStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating pictures directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file picture storage")
	return &filePictureStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SavePicture implements [PictureStorage]. Only the extension of fileName is
// kept; the rest of the name is generated.
func (s *filePictureStorage) SavePicture(ctx context.Context, fileName, _ string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := utils.PictureFileName(fileName)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*filePictureStorage.SavePicture").Msg("error creating picture file")
		return "", fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}

	if _, err = io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*filePictureStorage.SavePicture").Msg("error writing picture file")
		return "", fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}

	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}

	return name, nil
}

// DeletePicture implements [PictureStorage]. References that are not a bare
// file name are rejected so callers cannot reach outside dir.
func (s *filePictureStorage) DeletePicture(_ context.Context, reference string) error {
	if reference == "" || filepath.Base(reference) != reference || reference == "." || reference == ".." {
		return ErrPictureNotFound
	}

	if err := os.Remove(filepath.Join(s.dir, reference)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrPictureNotFound
		}
		return fmt.Errorf("error deleting picture: %w", err)
	}

	return nil
}
