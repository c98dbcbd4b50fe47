package event

import "testing"

type countingListener struct {
	received []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.received = append(l.received, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(MonsterDefeated, a)
	d.Subscribe(MonsterDefeated, b)
	d.Subscribe(HeroDamaged, a)

	d.Dispatch(Event{Type: MonsterDefeated, Data: 7})

	if len(a.received) != 1 || len(b.received) != 1 {
		t.Fatalf("expected both subscribers notified, got %d and %d", len(a.received), len(b.received))
	}
	if a.received[0].Data != 7 {
		t.Errorf("expected payload 7, got %v", a.received[0].Data)
	}
}

func TestDispatchIgnoresOtherTypes(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	d.Subscribe(MonsterDefeated, a)

	d.Dispatch(Event{Type: HeroDamaged})

	if len(a.received) != 0 {
		t.Errorf("expected no delivery for other types, got %d", len(a.received))
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(MonsterEscaped, a)
	d.Subscribe(MonsterEscaped, b)

	d.Unsubscribe(MonsterEscaped, a)
	d.Dispatch(Event{Type: MonsterEscaped})

	if len(a.received) != 0 {
		t.Errorf("expected unsubscribed listener silent, got %d", len(a.received))
	}
	if len(b.received) != 1 {
		t.Errorf("expected remaining listener notified, got %d", len(b.received))
	}
}
