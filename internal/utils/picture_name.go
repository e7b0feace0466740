package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PictureFileName returns a fresh storage name for an uploaded recipe
// picture. Only the lower-cased extension of uploadName survives; the rest
// is a time-ordered UUIDv7, so names sort by upload time and never collide
// with user-chosen file names.
func PictureFileName(uploadName string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return id.String() + strings.ToLower(filepath.Ext(uploadName))
}
