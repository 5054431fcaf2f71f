package jalali

import "errors"

// ErrUnsupportedFormat is returned by loaders for files they cannot decode.
var ErrUnsupportedFormat = errors.New("jalali: unsupported data format")

// ErrInvalidSection indicates a data section whose root is not a mapping.
var ErrInvalidSection = errors.New("jalali: section root must be a mapping")

// ErrNoTemplate is returned when a renderer is built without a template body.
var ErrNoTemplate = errors.New("jalali: empty template")
