// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - событие симуляции
type Event struct {
	Type EventType
	Data interface{}
}

// Listener - подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Handler оборачивает функцию в Listener. Используется по указателю,
// чтобы Unsubscribe мог сравнивать подписчиков.
type Handler struct {
	Fn func(Event)
}

// NewHandler создаёт обёртку для fn.
func NewHandler(fn func(Event)) *Handler {
	return &Handler{Fn: fn}
}

func (h *Handler) OnEvent(e Event) {
	if h.Fn != nil {
		h.Fn(e)
	}
}

// Dispatcher - синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки внутри того же тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Count возвращает число подписчиков на событие.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
