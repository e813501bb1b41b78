// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeFailedPrecondition,
//	    "results handled before postprocessing",
//	    map[string]any{
//	        "state":  "created",
//	        "source": "/src/foo.c",
//	    },
//	)
//
// Callers match codes with HasCode rather than comparing messages:
//
//	if errors.HasCode(err, errors.ErrCodeFailedPrecondition) {
//	    // caller violated the handler call order
//	}
package errors
