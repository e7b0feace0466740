package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/internal/validators"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-chi/chi/v5"
)

// maxMultipartMemory is the part of a multipart body kept in memory; the
// rest spills to temporary files.
const maxMultipartMemory = 10 << 20

// maxPictureSize bounds a single uploaded picture.
const maxPictureSize = 5 << 20

// maxRecipeUploadSize bounds a whole multipart recipe body. Reading stops
// there, so an oversized upload never reaches the temporary directory.
const maxRecipeUploadSize = maxPictureSize + maxMultipartMemory

func decodeJSON(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// idParam parses the named path parameter as a positive int64.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIdentifier
	}
	return id, nil
}

// readRecipeRequest reads a recipe from a JSON body or from a
// multipart/form-data body with an optional "picture" file part. The
// returned cleanup must be called once the picture has been consumed.
//
// Multipart bodies longer than maxRecipeUploadSize are cut off and reported
// as ErrInvalidPicture.
func readRecipeRequest(w http.ResponseWriter, r *http.Request) (models.RecipeRequest, *models.PictureUpload, func(), error) {
	var req models.RecipeRequest
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := decodeJSON(r, &req); err != nil {
			return req, nil, noop, err
		}
		return req, nil, noop, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRecipeUploadSize)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, nil, noop, fmt.Errorf("%w: upload exceeds %d bytes", ErrInvalidPicture, tooLarge.Limit)
		}
		return req, nil, noop, fmt.Errorf("%w: %v", ErrInvalidPicture, err)
	}
	cleanup := func() { _ = r.MultipartForm.RemoveAll() }

	form := r.MultipartForm.Value
	req.Title = formValue(form, "title")
	req.Ingredients = formValue(form, "ingredients")
	req.Steps = formValue(form, "steps")
	req.Category = formValue(form, "category")

	if raw := formValue(form, "isApproved"); raw != nil {
		approved, err := strconv.ParseBool(*raw)
		if err != nil {
			cleanup()
			return req, nil, noop, &validators.ValidationError{Fields: []models.FieldError{
				{Field: "isApproved", Message: "IsApproved must be true or false"},
			}}
		}
		req.IsApproved = &approved
	}

	files := r.MultipartForm.File["picture"]
	if len(files) == 0 {
		return req, nil, cleanup, nil
	}

	header := files[0]
	contentType := header.Header.Get("Content-Type")
	if header.Size > maxPictureSize || !strings.HasPrefix(contentType, "image/") {
		cleanup()
		return req, nil, noop, fmt.Errorf("%w: %q of %d bytes", ErrInvalidPicture, contentType, header.Size)
	}

	file, err := header.Open()
	if err != nil {
		cleanup()
		return req, nil, noop, fmt.Errorf("%w: %v", ErrInvalidPicture, err)
	}

	picture := &models.PictureUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     file,
	}
	return req, picture, func() {
		_ = file.Close()
		cleanup()
	}, nil
}

func formValue(form map[string][]string, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
