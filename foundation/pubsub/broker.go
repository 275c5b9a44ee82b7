// Package pubsub is a small in-process topic broker used to fan one payload
// out to several worker operations.
package pubsub

import (
	"fmt"
	"sync"
	"time"
)

type Broker[T any] struct {
	topics map[string][]*Subscriber[T]
	sync.RWMutex
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		topics: make(map[string][]*Subscriber[T]),
	}
}

// Publish delivers data to every subscriber of topic. It waits briefly for
// the topic to gain its first subscriber, covering the startup race between
// publishing and subscribing operations.
func (b *Broker[T]) Publish(topic string, data T) error {
	deadline := time.NewTimer(3 * time.Second)
	defer deadline.Stop()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		b.RLock()
		subs, exists := b.topics[topic]
		b.RUnlock()

		if exists {
			for _, sub := range subs {
				sub.Signal(data)
			}
			return nil
		}

		select {
		case <-deadline.C:
			return fmt.Errorf("topic[%s] does not exist", topic)

		case <-ticker.C:
		}
	}
}

func (b *Broker[T]) Subscribe(topic string, s *Subscriber[T]) {
	b.Lock()
	defer b.Unlock()
	{
		b.topics[topic] = append(b.topics[topic], s)
	}
}

func (b *Broker[T]) Unsubscribe(topic string, s *Subscriber[T]) error {
	b.Lock()
	defer b.Unlock()
	{
		subs, exists := b.topics[topic]
		if !exists {
			return fmt.Errorf("topic[%s] does not exist", topic)
		}

		b.topics[topic] = removeFromSlice(subs, s)
		s.CloseChannel()
	}

	return nil
}

// =====================================================================================================================

func removeFromSlice[T comparable](s []T, d T) []T {
	for i := range s {
		if s[i] == d {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}
