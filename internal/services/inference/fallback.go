package inference

import (
	"context"
	"log"
)

// Fallback runs the remote function once and, on any failure, runs the local
// function. Remote failures are logged but never retried; only when both
// paths fail does the stage fail.
func Fallback[T any](ctx context.Context, name string, remote, local func(context.Context) (T, error)) (T, error) {
	result, err := remote(ctx)
	if err == nil {
		return result, nil
	}
	log.Printf("[DEBUG] Remote %s failed, falling back to local: %v", name, err)

	result, localErr := local(ctx)
	if localErr != nil {
		log.Printf("[ERROR] Local %s fallback failed: %v", name, localErr)
		var zero T
		return zero, localErr
	}
	return result, nil
}
