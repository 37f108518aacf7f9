package walker

import (
	"context"

	"github.com/bethropolis/dir-printer/internal/utils"
	"github.com/spf13/afero"
)

// WalkOptions configures Walk and Count
type WalkOptions struct {
	Logger   utils.Logger
	Context  context.Context
	Progress ProgressFunc
	Fs       afero.Fs
	// Total replaces the Entry Counter pass when it is not negative.
	Total int
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:  utils.NoopLogger{},
		Context: context.Background(),
		Fs:      afero.NewOsFs(),
		Total:   -1,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

func applyOptions(opts []Option) WalkOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.LoggerOrNoop(logger)
	}
}

// WithContext sets the context for cancellation. It is checked before each
// entry is emitted.
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

// WithProgress adds a progress callback, invoked once per emitted entry
func WithProgress(fn ProgressFunc) Option {
	return func(o *WalkOptions) {
		o.Progress = fn
	}
}

// WithFS walks an alternative filesystem
func WithFS(fsys afero.Fs) Option {
	return func(o *WalkOptions) {
		if fsys != nil {
			o.Fs = fsys
		}
	}
}

// WithTotal supplies a total computed earlier with Count.
func WithTotal(total int) Option {
	return func(o *WalkOptions) {
		o.Total = total
	}
}
