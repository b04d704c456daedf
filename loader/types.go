package loader

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for loading a minefield.
var (
	// ErrFileNotFound indicates the minefield file does not exist.
	ErrFileNotFound = errors.New("loader: file not found")

	// ErrMalformedInput indicates the content does not follow the format.
	ErrMalformedInput = errors.New("loader: malformed input")
)

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

func defaultOptions() options {
	return options{log: logrus.StandardLogger()}
}

// WithLogger routes loader diagnostics to l instead of the logrus
// standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
