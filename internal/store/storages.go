package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
)

// Storages groups every persistence component used by the service layer.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
	RatingRepository RatingRepository
	PictureStorage   PictureStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories together with the picture storage. Pictures go to
// S3 when a bucket is configured and to the local directory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	var pictures PictureStorage
	if cfg.Pictures.S3Bucket != "" {
		pictures, err = NewS3PictureStorage(ctx, cfg.Pictures, log)
	} else {
		pictures, err = NewFilePictureStorage(cfg.Pictures.Dir, log)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, pictures, log), nil
}

// NewStoragesFromDB builds the repositories on top of an open connection.
func NewStoragesFromDB(db *DB, pictures PictureStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecipeRepository: NewRecipeRepository(db, log),
		RatingRepository: NewRatingRepository(db, log),
		PictureStorage:   pictures,
		db:               db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
