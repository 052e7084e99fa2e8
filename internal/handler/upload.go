// internal/handler/upload.go
package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/media"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/gorilla/schema"
)

// maxMultipartMemory is held in memory before parts spill to disk.
const maxMultipartMemory = 32 << 20

// Multipart body limits. Each allows 1 MiB for text fields and framing on top
// of the files the request may carry.
const (
	multipartOverhead  = 1 << 20
	maxCallFormBody    = media.MaxUploadSize + multipartOverhead
	maxGalleryFormBody = service.MaxPhotosPerUpload*media.MaxUploadSize + multipartOverhead
)

// parseMultipart caps the body at limit and parses it. On failure the response
// is written (413 when the cap was hit) and false is returned.
func parseMultipart(w http.ResponseWriter, r *http.Request, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	err := r.ParseMultipartForm(maxMultipartMemory)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit))
		return false
	}
	respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
	return false
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mt, "multipart/")
}

// formFile reads one optional upload. A missing part returns nil.
func formFile(r *http.Request, field string) (*media.File, error) {
	_, fh, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Invalid(field, "could not read upload")
	}
	f, err := media.ReadMultipart(fh)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// formFiles reads every part uploaded under field, keeping order. Validation
// is left to the service so failures are reported per file.
func formFiles(r *http.Request, field string) []media.File {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		f, err := media.ReadPart(fh)
		if err != nil {
			f = media.File{Name: fh.Filename}
		}
		files = append(files, f)
	}
	return files
}

// formTimeLayouts are tried in order for time fields of a form.
var formTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

var timeType = reflect.TypeOf(time.Time{})

// formDecoder binds multipart values onto the same structs the JSON bodies
// use, keyed by their json names.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, convertFormTime)
	return d
}

func convertFormTime(v string) reflect.Value {
	v = strings.TrimSpace(v)
	for _, layout := range formTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return reflect.ValueOf(t)
		}
	}
	return reflect.Value{}
}

// decodeForm fills dst from the parsed multipart values. Conversion failures
// come back as a ValidationError keyed by field name.
func decodeForm(r *http.Request, dst interface{}) error {
	values := map[string][]string{}
	if r.MultipartForm != nil {
		values = r.MultipartForm.Value
	}
	err := formDecoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return domain.Invalid("form", "could not be read")
	}
	fields := make(map[string]string, len(multi))
	for key, fieldErr := range multi {
		fields[key] = formErrorMessage(fieldErr)
	}
	return &domain.ValidationError{Fields: fields}
}

func formErrorMessage(err error) string {
	var conv schema.ConversionError
	if !errors.As(err, &conv) || conv.Type == nil {
		return "is not valid"
	}
	switch {
	case conv.Type == timeType:
		return "must be a date (YYYY-MM-DD) or RFC3339 timestamp"
	case conv.Type.Kind() >= reflect.Int && conv.Type.Kind() <= reflect.Uint64:
		return "must be a whole number"
	default:
		return "is not valid"
	}
}
