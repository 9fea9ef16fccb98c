// Package async runs independent computations concurrently.
//
// Map applies a function to every element of a slice with bounded
// parallelism and returns the results in input order:
//
//	reports := async.Map(ctx, files, 4, func(ctx context.Context, path string) Report {
//		return check(ctx, path)
//	})
//
// Items not yet handed to a worker when the context is done are skipped and
// keep their zero value.
package async
