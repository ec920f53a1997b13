// Package storage writes base64-encoded photos to the local images directory
// and hands back virtual-root-relative paths.
package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Area names the per-entity image folder.
type Area string

const (
	AreaUsers    Area = "users"
	AreaProducts Area = "products"
)

// UploadStatus tags the outcome of a photo save.
type UploadStatus int

const (
	// NoPhoto means the caller supplied no payload.
	NoPhoto UploadStatus = iota
	// Uploaded means the photo was decoded and written.
	Uploaded
	// Failed means decoding or the disk write failed.
	Failed
)

// UploadResult is the explicit outcome replacing the old empty-string sentinel
// that conflated "no photo" and "upload failed".
type UploadResult struct {
	Status UploadStatus
	// Path is the virtual root-relative reference (~/images/<area>/<file>),
	// set only when Status is Uploaded.
	Path string
	Err  error
}

// StoredPath keeps the persisted-value contract: empty string unless uploaded.
func (r UploadResult) StoredPath() string {
	if r.Status != Uploaded {
		return ""
	}
	return r.Path
}

// PhotoStore writes images under <root>/images/<area>/.
type PhotoStore struct {
	root string
}

// NewPhotoStore creates a store rooted at the given directory.
func NewPhotoStore(root string) *PhotoStore {
	return &PhotoStore{root: root}
}

// Save decodes a base64 payload and writes it with a random .jpg filename.
// Filenames are random per upload, so concurrent writes cannot collide.
func (s *PhotoStore) Save(encoded string, area Area) UploadResult {
	if encoded == "" {
		return UploadResult{Status: NoPhoto}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return UploadResult{Status: Failed, Err: err}
	}

	file := uuid.New().String() + ".jpg"
	dir := filepath.Join(s.root, "images", string(area))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return UploadResult{Status: Failed, Err: err}
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
		return UploadResult{Status: Failed, Err: err}
	}

	return UploadResult{Status: Uploaded, Path: "~/images/" + string(area) + "/" + file}
}
