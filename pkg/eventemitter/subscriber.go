package eventemitter

type subscriber[T any] struct {
	inputQueue chan T
	callback   func(T)
}

func newSubscriber[T any](callback func(T)) *subscriber[T] {
	instance := &subscriber[T]{
		inputQueue: make(chan T, 1),
		callback:   callback,
	}
	go func() {
		for message := range instance.inputQueue {
			instance.callback(message)
		}
	}()
	return instance
}

func (subscriber *subscriber[T]) enqueue(message T) {
	subscriber.inputQueue <- message
}
