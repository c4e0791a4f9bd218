package engine

import (
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/pkg/logger"
)

func TestBusOrderAndPayload(t *testing.T) {
	bus := NewBus(logger.System("test"))

	var order []string
	bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		order = append(order, "first:"+p.Actor)
	})
	bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		order = append(order, "second:"+p.Actor)
	})

	bus.Publish(domain.EventRoundStart, domain.EventPayload{Actor: "dealer"})

	if len(order) != 2 {
		t.Fatalf("subscribers called %d times, want 2", len(order))
	}
	if order[0] != "first:dealer" || order[1] != "second:dealer" {
		t.Errorf("call order = %v, want registration order", order)
	}
}

func TestBusSynchronous(t *testing.T) {
	bus := NewBus(logger.System("test"))

	done := false
	bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		done = true
	})
	bus.Publish(domain.EventCardDrawn, domain.EventPayload{})

	if !done {
		t.Error("subscriber had not run by the time Publish returned")
	}
}

// Подписчик, публикующий событие из обработчика, раскручивает каскад.
// Шина должна обрезать его на глубине MaxBusDepth, а не повиснуть.
func TestBusCascadeTruncation(t *testing.T) {
	bus := NewBus(logger.System("test"))

	calls := 0
	bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		calls++
		bus.Publish(domain.EventDamageDealt, p)
	})

	bus.Publish(domain.EventDamageDealt, domain.EventPayload{Actor: "loop"})

	if calls != MaxBusDepth {
		t.Errorf("subscriber ran %d times, want %d", calls, MaxBusDepth)
	}
}

func TestBusDepthResetAfterCascade(t *testing.T) {
	bus := NewBus(logger.System("test"))

	calls := 0
	bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		calls++
		if ev == domain.EventDamageDealt {
			bus.Publish(domain.EventDamageDealt, p)
		}
	})

	bus.Publish(domain.EventDamageDealt, domain.EventPayload{})
	truncatedAt := calls

	// После обрезанного каскада обычная публикация снова проходит
	bus.Publish(domain.EventRoundEnd, domain.EventPayload{})
	if calls != truncatedAt+1 {
		t.Errorf("bus did not recover after truncated cascade: %d calls, want %d", calls, truncatedAt+1)
	}
}
