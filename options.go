package hwplane

import "log/slog"

// Option configures a Validator during creation.
// Use functional options to customize validator behavior.
//
// Example:
//
//	// Reference hardware limits, diagnostics to the package logger
//	v := hwplane.New()
//
//	// Custom limits and a dedicated diagnostics sink
//	v := hwplane.New(
//	    hwplane.WithLimits(limits),
//	    hwplane.WithReporter(hwplane.ReporterFunc(collect)),
//	)
type Option func(*validatorOptions)

// validatorOptions holds optional configuration for Validator creation.
type validatorOptions struct {
	limits   Limits
	reporter Reporter
}

// defaultOptions returns the default validator options.
func defaultOptions() validatorOptions {
	return validatorOptions{
		limits:   DefaultLimits(),
		reporter: nil, // Will be set to the package logger if nil
	}
}

// WithLimits sets the hardware limits of the target plane generation.
// Invalid limits are replaced by DefaultLimits when the validator is built.
func WithLimits(l Limits) Option {
	return func(o *validatorOptions) {
		o.limits = l
	}
}

// WithReporter sends diagnostics to r instead of the package logger.
// Passing nil restores the package logger.
func WithReporter(r Reporter) Option {
	return func(o *validatorOptions) {
		o.reporter = r
	}
}

// WithLogger sends diagnostics to l instead of the package logger.
//
// Example:
//
//	v := hwplane.New(hwplane.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(o *validatorOptions) {
		if l == nil {
			o.reporter = nil
			return
		}
		o.reporter = slogReporter{logger: l}
	}
}
