package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	first := listenerFunc(func(Event) { order = append(order, 1) })
	second := listenerFunc(func(Event) { order = append(order, 2) })
	d.Subscribe(EnemyKilled, first)
	d.Subscribe(EnemyKilled, second)

	d.Emit(EnemyKilled, EnemyKilledData{Score: 10})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", order)
	}
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, LevelUp, GemCollected)
	if d.ListenerCount(LevelUp) != 1 || d.ListenerCount(GemCollected) != 1 {
		t.Fatalf("SubscribeAll did not register both types")
	}

	d.Emit(GemCollected, nil)
	d.Emit(GameOver, nil)
	d.Unsubscribe(GemCollected, r)
	d.Emit(GemCollected, nil)
	d.Emit(LevelUp, LevelUpData{Level: 2})

	if len(r.got) != 2 || r.got[0] != GemCollected || r.got[1] != LevelUp {
		t.Errorf("received %v", r.got)
	}
	if d.ListenerCount(GemCollected) != 0 {
		t.Errorf("listener still counted after Unsubscribe")
	}
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }
