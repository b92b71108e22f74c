package session

import "testing"

func TestReserveCounterIsIdempotent(t *testing.T) {
	td := NewThreadData()
	c1 := td.ReserveCounter("errors")
	c2 := td.ReserveCounter("errors")
	if c1 != c2 {
		t.Fatal("ReserveCounter(errors) returned two different slots")
	}
	c1.Add(5)
	if got := td.GetCounter("errors").Get(); got != 5 {
		t.Errorf("GetCounter(errors).Get() = %d, want 5", got)
	}
}

func TestSharedCounterCompareAndSet(t *testing.T) {
	c := &SharedCounter{}
	c.Set(1)
	if c.CompareAndSet(0, 2) {
		t.Fatal("CompareAndSet succeeded against a stale expected value")
	}
	if !c.CompareAndSet(1, 2) {
		t.Fatal("CompareAndSet failed against the current value")
	}
	if got := c.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := &Queue{}
	q.Push("a")
	q.Push("b")

	v, ok := q.Pop()
	if !ok || v != "a" {
		t.Fatalf("Pop() = (%v, %v), want (a, true)", v, ok)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}

	q.Pop()
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop() on an empty queue should report ok=false")
	}
}

func TestLockTryLock(t *testing.T) {
	l := &Lock{}
	if !l.TryLock() {
		t.Fatal("TryLock() on a fresh lock should succeed")
	}
	if l.TryLock() {
		t.Fatal("TryLock() while held should fail")
	}
	l.Unlock()
	if l.Held() {
		t.Fatal("Held() should be false after Unlock")
	}
	if !l.TryLock() {
		t.Fatal("TryLock() after Unlock should succeed")
	}
}

func TestGetCounterBeforeReserve(t *testing.T) {
	td := NewThreadData()
	if td.GetCounter("never-reserved") != nil {
		t.Fatal("GetCounter should return nil for an unreserved key")
	}
}
