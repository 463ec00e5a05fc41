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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedSendDeliversToAllSubscribers(t *testing.T) {
	var feed Feed
	ch1 := make(chan int, 1)
	ch2 := make(chan int, 1)
	feed.Subscribe(ch1)
	feed.Subscribe(ch2)

	n := feed.Send(42)
	require.Equal(t, 2, n)
	require.Equal(t, 42, <-ch1)
	require.Equal(t, 42, <-ch2)
}

func TestFeedUnsubscribeStopsDelivery(t *testing.T) {
	var feed Feed
	ch := make(chan int, 1)
	sub := feed.Subscribe(ch)
	sub.Unsubscribe()

	n := feed.Send(1)
	require.Equal(t, 0, n)
}

func TestFeedConcurrentSend(t *testing.T) {
	var feed Feed
	const subs = 8
	var wg sync.WaitGroup
	counts := make([]int, subs)

	for i := 0; i < subs; i++ {
		i := i
		ch := make(chan int, 100)
		feed.Subscribe(ch)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ch {
				counts[i]++
				if counts[i] == 10 {
					return
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		feed.Send(i)
	}
	wg.Wait()

	for _, c := range counts {
		require.Equal(t, 10, c)
	}
}
