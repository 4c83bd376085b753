package asyncload

import (
	"container/heap"
	"testing"
)

func TestReadyQueueOrdersByPriorityThenFIFO(t *testing.T) {
	q := &readyQueue{}
	heap.Init(q)

	jobLow := NewJob(nil, "low", nil)
	jobMidFirst := NewJob(nil, "mid-first", nil)
	jobMidSecond := NewJob(nil, "mid-second", nil)
	jobHigh := NewJob(nil, "high", nil)

	heap.Push(q, &readyItem{job: jobLow, priority: 0, seq: 1})
	heap.Push(q, &readyItem{job: jobMidFirst, priority: 5, seq: 2})
	heap.Push(q, &readyItem{job: jobHigh, priority: 10, seq: 3})
	heap.Push(q, &readyItem{job: jobMidSecond, priority: 5, seq: 4})

	var order []string
	for q.Len() > 0 {
		item := heap.Pop(q).(*readyItem)
		order = append(order, item.job.Name())
	}

	want := []string{"high", "mid-first", "mid-second", "low"}
	if len(order) != len(want) {
		t.Fatalf("popped %d items, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q (full order %v)", i, order[i], want[i], order)
		}
	}
}

func TestRemoveFromReadyLocked(t *testing.T) {
	l := &Loader{}
	a := NewJob(nil, "a", nil)
	b := NewJob(nil, "b", nil)
	c := NewJob(nil, "c", nil)

	l.pushReadyLocked(a)
	l.pushReadyLocked(b)
	l.pushReadyLocked(c)

	if !l.removeFromReadyLocked(b) {
		t.Fatal("removeFromReadyLocked(b) = false, want true")
	}
	if l.removeFromReadyLocked(b) {
		t.Error("removing b twice should report false the second time")
	}
	if l.ready.indexOf(b) != -1 {
		t.Error("b still present in ready queue after removal")
	}
	if l.ready.Len() != 2 {
		t.Errorf("ready queue length = %d, want 2", l.ready.Len())
	}
}

func TestBumpReadyPriorityLockedReordersHeap(t *testing.T) {
	l := &Loader{}
	a := NewJob(nil, "a", nil)
	b := NewJob(nil, "b", nil)

	l.pushReadyLocked(a)
	l.pushReadyLocked(b)

	b.setPriority(100)
	l.bumpReadyPriorityLocked(b)

	item := heap.Pop(&l.ready).(*readyItem)
	if item.job != b {
		t.Errorf("after bumping b's priority, top of heap = %q, want %q", item.job.Name(), "b")
	}
}

func TestBumpReadyPriorityLockedNoopWhenNotQueued(t *testing.T) {
	l := &Loader{}
	a := NewJob(nil, "a", nil)
	a.setPriority(50)

	// a was never pushed; this must not panic or corrupt the (empty) heap.
	l.bumpReadyPriorityLocked(a)

	if l.ready.Len() != 0 {
		t.Errorf("ready queue length = %d, want 0", l.ready.Len())
	}
}
