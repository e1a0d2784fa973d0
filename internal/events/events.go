// Package events implements the two priority orderings Fortune's sweep
// consumes: a presorted site-event cursor and a circle-event multiset
// ordered by decreasing trigger-y with O(log N) arbitrary insert/remove,
// backed by github.com/google/btree (the same structure this library's
// reference corpus reaches for wherever an ordered, arbitrarily-deletable
// collection is needed).
package events

import (
	"sort"

	"github.com/google/btree"

	"github.com/hanting/fortune-voronoi/geometry"
)

// SiteQueue yields site indices in the order the sweep must process them:
// decreasing y, ties broken by decreasing x. It never needs arbitrary
// removal — site events are never cancelled, only circle events are.
type SiteQueue struct {
	sites []geometry.Point
	order []int
	pos   int
}

// NewSiteQueue builds the site-event order for sites.
func NewSiteQueue(sites []geometry.Point) *SiteQueue {
	order := make([]int, len(sites))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := sites[order[i]], sites[order[j]]
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X > b.X
	})
	return &SiteQueue{sites: sites, order: order}
}

// Len returns the number of site events not yet popped.
func (q *SiteQueue) Len() int {
	return len(q.order) - q.pos
}

// PeekY returns the y of the next pending site event. The caller must
// check Len() > 0 first.
func (q *SiteQueue) PeekY() float64 {
	return q.sites[q.order[q.pos]].Y
}

// Pop returns the index of the next site and advances the cursor.
func (q *SiteQueue) Pop() int {
	idx := q.order[q.pos]
	q.pos++
	return idx
}

// CircleEvent is a prediction that three consecutive beach-line arcs will
// collapse. Arc names the beach-line node id (opaque to this package) of
// the middle arc the event is attached to — a weak back-reference per the
// Design Notes' circle-event-lifetime guidance: cancelling an event clears
// both sides (the arc's pointer to the event, and this event's liveness)
// within the single-threaded sweep, never leaving a dangling reference.
type CircleEvent struct {
	TriggerY float64
	Seq      uint64
	Arc      int32
}

// Less orders circle events by increasing trigger-y, ties broken by
// increasing sequence number; CircleQueue reads them out via Max(), i.e.
// in decreasing trigger-y order, which is the order the sweep wants.
func (c *CircleEvent) Less(than btree.Item) bool {
	o := than.(*CircleEvent)
	if c.TriggerY != o.TriggerY {
		return c.TriggerY < o.TriggerY
	}
	return c.Seq < o.Seq
}

// CircleQueue is the ordered multiset of pending circle events.
type CircleQueue struct {
	tree *btree.BTree
	seq  uint64
}

// NewCircleQueue returns an empty circle-event queue.
func NewCircleQueue() *CircleQueue {
	return &CircleQueue{tree: btree.New(16)}
}

// Push enqueues a circle event triggering at triggerY for the beach-line
// arc identified by arc, and returns the handle used to cancel it later.
func (q *CircleQueue) Push(triggerY float64, arc int32) *CircleEvent {
	q.seq++
	ev := &CircleEvent{TriggerY: triggerY, Seq: q.seq, Arc: arc}
	q.tree.ReplaceOrInsert(ev)
	return ev
}

// Remove cancels a previously pushed event. Safe to call with nil.
func (q *CircleQueue) Remove(ev *CircleEvent) {
	if ev == nil {
		return
	}
	q.tree.Delete(ev)
}

// Len returns the number of pending circle events.
func (q *CircleQueue) Len() int {
	return q.tree.Len()
}

// PeekMaxY returns the trigger-y of the next circle event to fire. The
// caller must check Len() > 0 first.
func (q *CircleQueue) PeekMaxY() float64 {
	return q.tree.Max().(*CircleEvent).TriggerY
}

// PopMax removes and returns the event with the greatest trigger-y.
func (q *CircleQueue) PopMax() *CircleEvent {
	item := q.tree.DeleteMax()
	if item == nil {
		return nil
	}
	return item.(*CircleEvent)
}
