package error

import (
	"errors"
)

//nolint:golint,gochecknoglobals // errors.New() is not const
var (
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	ErrUnknownMethod     = errors.New("unknown compression method")
	ErrExtensionMismatch = errors.New("file extension does not match content")
	ErrCodecInit         = errors.New("failed to initialize codec")
	ErrCodecStream       = errors.New("codec stream error")
)
