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

package event

import (
	"context"
	"sync"
	"time"
)

// Subscription represents a stream of events. The carrier of the events is
// typically a channel, but isn't part of the interface.
//
// Subscriptions can fail while in progress. The error is sent on Err.
type Subscription interface {
	Unsubscribe()
	Err() <-chan error
}

// NewSubscription runs a producer function as a subscription in a new
// goroutine. The channel given to the producer is closed when Unsubscribe is
// called. If fn returns an error, it is sent on the subscription's error
// channel.
func NewSubscription(producer func(<-chan struct{}) error) Subscription {
	s := &funcSub{unsub: make(chan struct{}), err: make(chan error, 1)}
	go func() {
		defer close(s.err)
		err := producer(s.unsub)
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.unsubscribed {
			if err != nil {
				s.err <- err
			}
			s.unsubscribed = true
		}
	}()
	return s
}

type funcSub struct {
	unsub        chan struct{}
	unsubOnce    sync.Once
	err          chan error
	mu           sync.Mutex
	unsubscribed bool
}

func (s *funcSub) Unsubscribe() {
	s.unsubOnce.Do(func() {
		s.mu.Lock()
		if s.unsubscribed {
			s.mu.Unlock()
			return
		}
		s.unsubscribed = true
		s.mu.Unlock()
		close(s.unsub)
		<-s.err
	})
}

func (s *funcSub) Err() <-chan error { return s.err }

// resubscribeBackoff is the fixed delay between failed resubscribe attempts.
const resubscribeBackoff = 50 * time.Millisecond

// Resubscribe calls fn repeatedly to keep a subscription established. On
// failure it retries after a fixed backoff; once fn succeeds, Resubscribe
// waits for the returned subscription to fail and calls fn again. It stops
// (closing Err) once the established subscription ends without error, or
// once Unsubscribe is called — at which point ctx passed to fn is canceled.
func Resubscribe(ctx context.Context, fn func(context.Context) (Subscription, error)) Subscription {
	cctx, cancel := context.WithCancel(ctx)
	s := &resubscribeSub{ctx: cctx, cancel: cancel, fn: fn, err: make(chan error), unsub: make(chan struct{})}
	go s.loop()
	return s
}

type resubscribeSub struct {
	ctx    context.Context
	cancel context.CancelFunc
	fn     func(context.Context) (Subscription, error)
	err    chan error
	unsub  chan struct{}
	once   sync.Once
}

func (s *resubscribeSub) loop() {
	defer close(s.err)
	for {
		sub, err := s.fn(s.ctx)
		if err != nil {
			select {
			case <-time.After(resubscribeBackoff):
			case <-s.unsub:
				return
			}
			continue
		}
		select {
		case err := <-sub.Err():
			if err == nil {
				return
			}
		case <-s.unsub:
			sub.Unsubscribe()
			return
		}
	}
}

func (s *resubscribeSub) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		close(s.unsub)
	})
}

func (s *resubscribeSub) Err() <-chan error { return s.err }

// SubscriptionScope provides a facility to unsubscribe multiple subscriptions
// at once, e.g. during shutdown of the outer run loop.
type SubscriptionScope struct {
	mu     sync.Mutex
	subs   map[*scopeSub]struct{}
	closed bool
}

type scopeSub struct {
	sc *SubscriptionScope
	s  Subscription
}

// Track adds sub to the scope, returning a wrapper whose Unsubscribe removes
// it from the scope too. If the scope is already closed, sub is unsubscribed
// immediately and a nil wrapper is returned.
func (sc *SubscriptionScope) Track(sub Subscription) Subscription {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.closed {
		sub.Unsubscribe()
		return nil
	}
	if sc.subs == nil {
		sc.subs = make(map[*scopeSub]struct{})
	}
	ss := &scopeSub{sc, sub}
	sc.subs[ss] = struct{}{}
	return ss
}

func (s *scopeSub) Unsubscribe() {
	s.s.Unsubscribe()
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()
	delete(s.sc.subs, s)
}

func (s *scopeSub) Err() <-chan error { return s.s.Err() }

// Close calls Unsubscribe on all tracked subscriptions and prevents further
// additions to the tracked set.
func (sc *SubscriptionScope) Close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.closed {
		return
	}
	sc.closed = true
	for s := range sc.subs {
		s.s.Unsubscribe()
	}
	sc.subs = nil
}

// Count returns the number of tracked subscriptions.
func (sc *SubscriptionScope) Count() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.subs)
}
