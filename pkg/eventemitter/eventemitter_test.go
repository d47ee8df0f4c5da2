package eventemitter_test

import (
	"sync"
	"testing"
	"time"

	"hmcrun.dev/launcher/pkg/eventemitter"
)

func TestEmitReachesSubscriber(t *testing.T) {
	emitter := &eventemitter.EventEmitter[int]{}
	received := make(chan int, 1)
	emitter.Subscribe(func(message int) {
		received <- message
	})

	emitter.Emit(42)

	select {
	case message := <-received:
		if message != 42 {
			t.Errorf("Received %d, not %d", message, 42)
		}
	case <-time.After(time.Second):
		t.Fatal("Subscriber did not receive the message")
	}
}

func TestEmitReachesEverySubscriber(t *testing.T) {
	emitter := &eventemitter.EventEmitter[bool]{}
	var waitGroup sync.WaitGroup
	for subscriberIndex := 0; subscriberIndex < 3; subscriberIndex++ {
		waitGroup.Add(1)
		emitter.Subscribe(func(_ bool) {
			waitGroup.Done()
		})
	}

	emitter.Emit(true)

	done := make(chan struct{})
	go func() {
		waitGroup.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Not every subscriber received the message")
	}
}

func TestEmitWithoutSubscribers(t *testing.T) {
	emitter := &eventemitter.EventEmitter[string]{}
	emitter.Emit("unheard")
}
