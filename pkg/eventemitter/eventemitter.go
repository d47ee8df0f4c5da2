package eventemitter

// EventEmitter delivers messages of a single type to any number of
// subscribers. Every subscriber drains its own queue on a dedicated
// goroutine, so emitting never runs callbacks on the emitting side.
type EventEmitter[T any] struct {
	subscribers []*subscriber[T]
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	for _, entry := range eventEmitter.subscribers {
		entry.enqueue(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	eventEmitter.subscribers = append(eventEmitter.subscribers, newSubscriber(callback))
}
