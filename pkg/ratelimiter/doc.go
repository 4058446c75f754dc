// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg)
//	r.Use(ratelimiter.Middleware(bucket, clientip.GetIP, nil))
package ratelimiter
