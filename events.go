package bounds

import (
	"unsafe"

	"github.com/akmonengine/bounds/actor"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	MOVING_COLLIDING
	MOVING_SEPARATED
)

type pairKey struct {
	bodyA *actor.Body
	bodyB *actor.Body
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Pair events
type CollisionEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// Moving body events, sent when its scan result flips
type MovingCollidingEvent struct {
	Body *actor.Body
}

func (e MovingCollidingEvent) Type() EventType { return MOVING_COLLIDING }

type MovingSeparatedEvent struct {
	Body *actor.Body
}

func (e MovingSeparatedEvent) Type() EventType { return MOVING_SEPARATED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Pair tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordPairs marks the overlapping pairs of the current step
func (e *Events) recordPairs(bodies []*actor.Body, pairs []Pair) {
	for _, p := range pairs {
		e.currentActivePairs[makePairKey(bodies[p.A], bodies[p.B])] = true
	}
}

func (e *Events) emitMoving(body *actor.Body, colliding bool) {
	if colliding {
		e.buffer = append(e.buffer, MovingCollidingEvent{Body: body})
	} else {
		e.buffer = append(e.buffer, MovingSeparatedEvent{Body: body})
	}
}

// forget drops every tracked pair involving body
func (e *Events) forget(body *actor.Body) {
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
}

// processPairEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processPairEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		} else {
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next step and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processPairEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
