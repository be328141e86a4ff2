package icons

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the source image does not exist. Nothing is written.
	ErrSourceNotFound = errors.New("source image not found")
	// ErrAssetFailed classifies every read, decode, resize, encode, write and remove failure.
	ErrAssetFailed = errors.New("asset generation failed")
)

// AssetError reports the operation and path that failed.
type AssetError struct {
	Op   string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the classification and the underlying cause.
func (e *AssetError) Unwrap() []error {
	return []error{ErrAssetFailed, e.Err}
}
