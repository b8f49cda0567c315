package session

import (
	"testing"
	"time"
)

func TestStoreLifecycle(t *testing.T) {
	store, err := NewStore(4)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	store.Put(&Session{ID: "s1", Status: StatusProcessing, FileCount: 2, CreatedAt: time.Now()})

	got, ok := store.Get("s1")
	if !ok || got.Status != StatusProcessing {
		t.Fatalf("Get() = %+v, %v, want processing session", got, ok)
	}

	store.SetStatus("s1", StatusError, "boom")
	got, _ = store.Get("s1")
	if got.Status != StatusError || got.Error != "boom" {
		t.Errorf("after SetStatus: %+v, want error status with message", got)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	store, err := NewStore(2)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	store.Put(&Session{ID: "a"})
	store.Put(&Session{ID: "b"})
	store.Put(&Session{ID: "c"})

	if _, ok := store.Get("a"); ok {
		t.Error("oldest session survived past capacity")
	}
	if _, ok := store.Get("c"); !ok {
		t.Error("newest session missing")
	}
}

func TestHubReplaysLastEvent(t *testing.T) {
	hub, err := NewHub()
	if err != nil {
		t.Fatalf("NewHub() error = %v", err)
	}

	hub.Publish("s1", Event{Type: "complete", Percent: 100})

	ch, cancel := hub.Subscribe("s1")
	defer cancel()

	select {
	case evt := <-ch:
		if evt.Type != "complete" || evt.Percent != 100 {
			t.Errorf("replayed event = %+v, want terminal complete", evt)
		}
	default:
		t.Fatal("no event replayed to late subscriber")
	}
}

func TestHubFanOut(t *testing.T) {
	hub, err := NewHub()
	if err != nil {
		t.Fatalf("NewHub() error = %v", err)
	}

	ch1, cancel1 := hub.Subscribe("s1")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("s1")
	defer cancel2()
	other, cancelOther := hub.Subscribe("s2")
	defer cancelOther()

	hub.Publish("s1", Event{Type: "progress", Stage: "extracting", Percent: 50})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case evt := <-ch:
			if evt.Stage != "extracting" {
				t.Errorf("subscriber %d got %+v", i, evt)
			}
		default:
			t.Errorf("subscriber %d got no event", i)
		}
	}
	select {
	case evt := <-other:
		t.Errorf("unrelated session received %+v", evt)
	default:
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	hub, err := NewHub()
	if err != nil {
		t.Fatalf("NewHub() error = %v", err)
	}

	ch, cancel := hub.Subscribe("s1")
	cancel()

	hub.Publish("s1", Event{Type: "progress", Percent: 10})
	select {
	case evt := <-ch:
		t.Errorf("canceled subscriber received %+v", evt)
	default:
	}
}
