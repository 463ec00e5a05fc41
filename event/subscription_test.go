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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSubscriptionDeliversAndClosesErr(t *testing.T) {
	ch := make(chan int)
	sub := NewSubscription(func(quit <-chan struct{}) error {
		for i := 0; i < 3; i++ {
			select {
			case ch <- i:
			case <-quit:
				return nil
			}
		}
		return nil
	})

	for i := 0; i < 3; i++ {
		require.Equal(t, i, <-ch)
	}
	sub.Unsubscribe()

	err, ok := <-sub.Err()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewSubscriptionError(t *testing.T) {
	errBoom := errors.New("boom")
	sub := NewSubscription(func(quit <-chan struct{}) error { return errBoom })
	require.Equal(t, errBoom, <-sub.Err())
}

func TestResubscribeRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	sub := Resubscribe(context.Background(), func(ctx context.Context) (Subscription, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("transient")
		}
		return NewSubscription(func(<-chan struct{}) error { return nil }), nil
	})

	select {
	case <-sub.Err():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for resubscribe to settle")
	}
	require.GreaterOrEqual(t, attempts, 3)
}

func TestSubscriptionScopeClosesTracked(t *testing.T) {
	var scope SubscriptionScope
	ch := make(chan int)
	sub := NewSubscription(func(quit <-chan struct{}) error { <-quit; return nil })
	scope.Track(sub)
	require.Equal(t, 1, scope.Count())

	scope.Close()
	require.Equal(t, 0, scope.Count())
	_ = ch
}
