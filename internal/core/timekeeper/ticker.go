package timekeeper

import (
	"sync"
	"time"
)

// Subscription is a live recurring tick registration.
type Subscription interface {
	Stop()
}

// Ticker invokes a callback once per interval until the returned
// subscription is stopped.
type Ticker interface {
	Every(interval time.Duration, fn func()) Subscription
}

// SystemTicker is the Ticker backed by time.Ticker.
var SystemTicker Ticker = systemTicker{}

type systemTicker struct{}

func (systemTicker) Every(interval time.Duration, fn func()) Subscription {
	subscription := &tickerSubscription{stopCh: make(chan struct{})}
	go subscription.run(interval, fn)
	return subscription
}

type tickerSubscription struct {
	stopCh chan struct{}
	once   sync.Once
}

func (subscription *tickerSubscription) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-subscription.stopCh:
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Stop never waits for the loop to exit, so it is safe to call while the
// callback is blocked on the TimeKeeper lock.
func (subscription *tickerSubscription) Stop() {
	subscription.once.Do(func() {
		close(subscription.stopCh)
	})
}
