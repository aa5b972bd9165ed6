// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathboard/graphstore"
)

// Sentinel errors returned by Editor on top of the package-level ones from
// graphstore, authoring and shortestpath.
var (
	// ErrNodeCapacityExceeded indicates CreateNode at MaxNodes.
	ErrNodeCapacityExceeded = errors.New("editor: node capacity exceeded")

	// ErrAuthoringActive indicates CreateNode while edge mode is on.
	ErrAuthoringActive = errors.New("editor: cannot place nodes while adding edges")

	// ErrPlaybackCancelled indicates Play stopped because the drawing was reset.
	ErrPlaybackCancelled = errors.New("editor: playback cancelled by reset")
)

const (
	// DefaultMaxNodes caps the drawing size.
	DefaultMaxNodes = 12

	// DefaultStepDelay is the pause before each edge highlight.
	DefaultStepDelay = 600 * time.Millisecond
)

// Options configures an Editor.
type Options struct {
	MaxNodes      int
	WeightDivisor float64
	StepDelay     time.Duration
	Logger        *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns MaxNodes=12, WeightDivisor=10, StepDelay=600ms
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxNodes:      DefaultMaxNodes,
		WeightDivisor: graphstore.DefaultWeightDivisor,
		StepDelay:     DefaultStepDelay,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithMaxNodes sets the node cap; values < 1 are ignored.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxNodes = n
		}
	}
}

// WithWeightDivisor sets the pixel-to-weight divisor; values <= 0 are ignored.
func WithWeightDivisor(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.WeightDivisor = d
		}
	}
}

// WithStepDelay sets the playback pause; negative values are ignored.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.StepDelay = d
		}
	}
}

// WithLogger routes editor logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
