// Package assets bundles the card images and font resources into the
// binary and resolves image handles to decoded images.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
)

//go:embed images/*.png fonts/*.font
var FS embed.FS

// ErrAssetMissing is matched by every *AssetMissingError.
var ErrAssetMissing = errors.New("asset missing")

// AssetMissingError reports an image handle with no bundled file.
type AssetMissingError struct {
	Handle string
}

func (e *AssetMissingError) Error() string {
	return fmt.Sprintf("asset %q is not bundled", e.Handle)
}

// Is lets errors.Is(err, ErrAssetMissing) match.
func (e *AssetMissingError) Is(target error) bool {
	return target == ErrAssetMissing
}

// Images resolves image handles against a file system whose images
// live under images/.
type Images struct {
	fsys fs.FS
}

// NewImages returns a resolver over fsys. Pass FS for the bundled set.
func NewImages(fsys fs.FS) *Images {
	return &Images{fsys: fsys}
}

// Image decodes the PNG named by handle.
func (im *Images) Image(handle string) (image.Image, error) {
	f, err := im.fsys.Open(path.Join("images", handle))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &AssetMissingError{Handle: handle}
	}
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", handle, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", handle, err)
	}
	return img, nil
}

// Image resolves handle against the bundled assets.
func Image(handle string) (image.Image, error) {
	return NewImages(FS).Image(handle)
}
