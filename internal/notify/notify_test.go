package notify

import (
	"testing"
)

func TestNotifyOrder(t *testing.T) {
	n := New[int]()
	var got []string

	n.Subscribe(func(v int) { got = append(got, "first") })
	n.Subscribe(func(v int) { got = append(got, "second") })
	n.Subscribe(func(v int) { got = append(got, "third") })

	n.Notify(1)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	n := New[string]()
	calls := 0
	sub := n.Subscribe(func(string) { calls++ })

	n.Notify("a")
	sub.Unsubscribe()
	sub.Unsubscribe()
	n.Notify("b")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if n.Len() != 0 {
		t.Errorf("expected no subscriptions, got %d", n.Len())
	}
}

func TestSubscribeFromObserver(t *testing.T) {
	n := New[int]()
	inner := 0
	n.Subscribe(func(int) {
		n.Subscribe(func(int) { inner++ })
	})

	// Must not deadlock; the new observer only sees later values.
	n.Notify(1)
	if inner != 0 {
		t.Errorf("observer added during delivery should not see the current value")
	}
	n.Notify(2)
	if inner != 1 {
		t.Errorf("expected inner observer to be called once, got %d", inner)
	}
}

func TestNilSubscription(t *testing.T) {
	var sub *Subscription[int]
	sub.Unsubscribe()
}
