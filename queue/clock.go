// Copyright 2026 The lcqueue Authors
// This file is part of the lcqueue library.
//
// This software is provided "as is", without warranty of any kind,
// express or implied, including but not limited to the warranties
// of merchantability, fitness for a particular purpose and
// noninfringement. In no event shall the authors or copyright
// holders be liable for any claim, damages, or other liability,
// whether in an action of contract, tort or otherwise, arising
// from, out of or in connection with the software or the use or
// other dealings in the software.

package queue

import "time"

// Clock is the engine's time source. Production code uses SystemClock; tests
// supply a fixed or steppable clock so Property 4/5/7/8 scenarios (S2, S4, S6)
// are deterministic instead of racing the wall clock.
type Clock interface {
	// Now returns the current reading, wall-clock unix seconds.
	Now() uint64
}

// SystemClock reads the real wall clock. It is not required to be monotonic
// across process restarts, only non-decreasing during a single Step, which the
// OS clock already guarantees in practice.
type SystemClock struct{}

func (SystemClock) Now() uint64 { return uint64(time.Now().Unix()) }

// FixedClock always returns the same reading; useful for property tests that
// need now() pinned.
type FixedClock uint64

func (c FixedClock) Now() uint64 { return uint64(c) }
