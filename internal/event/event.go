// internal/event/event.go
package event

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subscription identifies one registered handler.
type Subscription struct {
	ID  string
	typ reflect.Type
}

type listener struct {
	id      string
	handler any
}

// Dispatcher is a synchronous, in-process typed message bus. Handlers run on
// the caller's goroutine during Dispatch, in registration order. A panicking
// handler is a bug and is not recovered.
type Dispatcher struct {
	listeners map[reflect.Type][]listener
	log       *zap.Logger
}

// NewDispatcher creates an empty dispatcher. A nil logger disables logging.
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		listeners: make(map[reflect.Type][]listener),
		log:       log,
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Subscribe registers fn for messages of type T.
func Subscribe[T any](d *Dispatcher, fn func(T)) Subscription {
	t := typeOf[T]()
	sub := Subscription{ID: uuid.NewString(), typ: t}
	d.listeners[t] = append(d.listeners[t], listener{id: sub.ID, handler: fn})
	d.log.Debug("subscribed", zap.String("message", t.String()), zap.String("subscription", sub.ID))
	return sub
}

// Unsubscribe removes the handler; unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	listeners := d.listeners[sub.typ]
	for i, l := range listeners {
		if l.id == sub.ID {
			d.listeners[sub.typ] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers msg to every handler registered for T before returning.
func Dispatch[T any](d *Dispatcher, msg T) {
	t := typeOf[T]()
	listeners := d.listeners[t]
	d.log.Debug("dispatch", zap.String("message", t.String()), zap.Int("handlers", len(listeners)))
	for _, l := range listeners {
		l.handler.(func(T))(msg)
	}
}

// Handlers returns the number of handlers registered for T.
func Handlers[T any](d *Dispatcher) int {
	return len(d.listeners[typeOf[T]()])
}
