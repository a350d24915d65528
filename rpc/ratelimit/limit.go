// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/weddingd/fault"
)

// MaximumDelay - a request that would wait longer than this is refused
const MaximumDelay = 5 * time.Second

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1)
}

// LimitN - limiting for a request costing count tokens
//
// waits for the tokens unless the wait would exceed MaximumDelay, in
// which case the reservation is returned and the request refused
func LimitN(limiter *rate.Limiter, count int) error {
	if count <= 0 {
		return fault.ErrInvalidCount
	}
	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	delay := r.Delay()
	if delay > MaximumDelay {
		r.Cancel()
		return fault.ErrRateLimiting
	}
	time.Sleep(delay)
	return nil
}
