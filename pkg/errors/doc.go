// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to sort version list",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "count": len(versions),
//	        "limit": maxBulkVersions,
//	    },
//	)
package errors
