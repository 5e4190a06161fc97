// Package ratelimit provides the limiter collaborator behind the request
// gate. A nil limiter means the feature is off; a limiter error is treated
// as "allow" by the gate, trading strict enforcement for availability.
package ratelimit

import "context"

// Limiter answers whether one more request for key may proceed right now.
// ok=false is a denial; a non-nil error is an infrastructure failure, not a
// denial.
type Limiter interface {
	Allow(ctx context.Context, key string) (ok bool, err error)
}
