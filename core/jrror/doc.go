// Package jrror provides the structured error signal used across the engine.
//
// A Jrror carries a machine-readable code, a human message, a severity type
// and an optional documentation path. Every signal is routed through the same
// handling policy:
//
//   - warn: logged at warn level, execution continues
//   - error: logged at error level, the caller converts it into a failure
//   - panic: logged, then the process exits with status 1
//
// Panic-typed signals are meant for unrecoverable startup conditions such as
// malformed configuration. Request dispatch never exits the process.
//
// Basic usage:
//
//	err := jrror.New(jrror.CodeRouteConflict, "dynamic segment [id] conflicts with [slug]",
//		jrror.TypeError, jrror.WithDocsPath("/routing"))
//
//	if j, ok := jrror.As(err); ok {
//		j.Handle(ctx, logger)
//	}
//
// Signals compare by code, so package level sentinels work with errors.Is:
//
//	if errors.Is(err, router.ErrRouteDuplicate) {
//		// ...
//	}
package jrror
