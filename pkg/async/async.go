package async

import (
	"context"
	"sync"
)

// Map calls fn for every item using at most limit goroutines and returns
// the results in the order of items. A limit below 1 means one goroutine.
// Items not yet started when ctx is done are left as zero values.
func Map[T, U any](ctx context.Context, items []T, limit int, fn func(context.Context, T) U) []U {
	results := make([]U, len(items))
	if len(items) == 0 {
		return results
	}
	limit = max(1, min(limit, len(items)))

	var wg sync.WaitGroup
	next := make(chan int)

	for range limit {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i] = fn(ctx, items[i])
			}
		}()
	}

	func() {
		defer close(next)
		for i := range items {
			select {
			case next <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return results
}
