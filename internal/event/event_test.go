package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}

	d.Subscribe(EnemyKilled, kills)
	d.SubscribeAll(all, EnemyKilled, LevelUp)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{Points: 30}})
	d.Dispatch(Event{Type: LevelUp, Data: LevelUpData{Level: 2}})
	d.Dispatch(Event{Type: GameOver})

	if len(kills.got) != 1 {
		t.Errorf("kills received %d events, want 1", len(kills.got))
	}
	if len(all.got) != 2 {
		t.Errorf("all received %d events, want 2", len(all.got))
	}
	if data, ok := kills.got[0].Data.(EnemyData); !ok || data.Points != 30 {
		t.Errorf("unexpected payload %#v", kills.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ShotFired, a)
	d.Subscribe(ShotFired, b)

	d.Unsubscribe(ShotFired, a)
	d.Dispatch(Event{Type: ShotFired})

	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("a=%d b=%d, want 0/1", len(a.got), len(b.got))
	}
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	calls := 0
	d := NewDispatcher()
	d.Subscribe(GameOver, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: GameOver})
	if calls != 1 {
		t.Errorf("calls = %d", calls)
	}

	var none *Dispatcher
	none.Dispatch(Event{Type: GameOver})
}
