package timekeeper

import (
	"sync"
	"time"
)

type fakeSubscription struct {
	ticker  *fakeTicker
	fn      func()
	stopped int
}

func (subscription *fakeSubscription) Stop() {
	subscription.ticker.mu.Lock()
	defer subscription.ticker.mu.Unlock()
	subscription.stopped++
}

// fakeTicker records subscriptions and fires them on demand.
type fakeTicker struct {
	mu            sync.Mutex
	intervals     []time.Duration
	subscriptions []*fakeSubscription
}

func (ticker *fakeTicker) Every(interval time.Duration, fn func()) Subscription {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	subscription := &fakeSubscription{ticker: ticker, fn: fn}
	ticker.intervals = append(ticker.intervals, interval)
	ticker.subscriptions = append(ticker.subscriptions, subscription)
	return subscription
}

// fire invokes every subscription that has not been stopped, the way a real
// ticker would once per interval.
func (ticker *fakeTicker) fire() {
	ticker.mu.Lock()
	var live []func()
	for _, subscription := range ticker.subscriptions {
		if subscription.stopped == 0 {
			live = append(live, subscription.fn)
		}
	}
	ticker.mu.Unlock()
	for _, fn := range live {
		fn()
	}
}

func (ticker *fakeTicker) fireN(n int) {
	for i := 0; i < n; i++ {
		ticker.fire()
	}
}

func (ticker *fakeTicker) live() int {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	count := 0
	for _, subscription := range ticker.subscriptions {
		if subscription.stopped == 0 {
			count++
		}
	}
	return count
}

func (ticker *fakeTicker) last() *fakeSubscription {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if len(ticker.subscriptions) == 0 {
		return nil
	}
	return ticker.subscriptions[len(ticker.subscriptions)-1]
}

type countingAlarm struct {
	mu    sync.Mutex
	rings int
}

func (alarm *countingAlarm) Ring() {
	alarm.mu.Lock()
	defer alarm.mu.Unlock()
	alarm.rings++
}

func (alarm *countingAlarm) count() int {
	alarm.mu.Lock()
	defer alarm.mu.Unlock()
	return alarm.rings
}
