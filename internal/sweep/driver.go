// Package sweep runs Fortune's sweep (§4.3/§4.4) over a beach line,
// producing the intermediate edge records internal/edgestore collects,
// then hands them to post-processing to clip into the final diagram.
package sweep

import (
	"fmt"
	"log"

	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/internal/beachline"
	"github.com/hanting/fortune-voronoi/internal/edgestore"
	"github.com/hanting/fortune-voronoi/internal/events"
	"github.com/hanting/fortune-voronoi/internal/fault"
)

// Result is everything the public Build needs to assemble a Diagram.
type Result struct {
	Vertices []geometry.Point
	Edges    []edgestore.Output
}

// Driver runs one sweep to completion over a fixed site set.
type Driver struct {
	sites   []geometry.Point
	bounds  geometry.Rect
	logger  *log.Logger
	epsilon float64

	tree    *beachline.Tree
	store   *edgestore.Store
	siteQ   *events.SiteQueue
	circleQ *events.CircleQueue
	sweepY  float64
}

// New builds a Driver over sites, ready to Run. logger receives the same
// per-event tracing the reference implementation logs with log.Printf;
// pass a logger writing to io.Discard to silence it. epsilon is the
// tolerance for a circle event's predicted trigger-y against the current
// sweep position (§4.3 step 5).
func New(sites []geometry.Point, bounds geometry.Rect, epsilon float64, logger *log.Logger) *Driver {
	return &Driver{
		sites:   sites,
		bounds:  bounds,
		logger:  logger,
		epsilon: epsilon,
		tree:    beachline.New(sites),
		store:   edgestore.New(),
		siteQ:   events.NewSiteQueue(sites),
		circleQ: events.NewCircleQueue(),
	}
}

// Run executes the sweep and post-processing, returning the finalized
// vertex and edge lists.
func (d *Driver) Run() (Result, error) {
	if err := d.insertTopPrefix(); err != nil {
		return Result{}, err
	}

	for d.siteQ.Len() > 0 || d.circleQ.Len() > 0 {
		useCircle := false
		if d.circleQ.Len() > 0 {
			if d.siteQ.Len() == 0 || d.circleQ.PeekMaxY() > d.siteQ.PeekY() {
				useCircle = true
			}
		}
		if useCircle {
			ev := d.circleQ.PopMax()
			d.sweepY = ev.TriggerY
			d.logger.Printf("sweep: circle event y=%.6f arc=%d", d.sweepY, ev.Arc)
			if err := d.handleCircleEvent(ev); err != nil {
				return Result{}, err
			}
			continue
		}
		s := d.siteQ.Pop()
		d.sweepY = d.sites[s].Y
		d.logger.Printf("sweep: site event y=%.6f site=%d", d.sweepY, s)
		if err := d.handleSiteEvent(s); err != nil {
			return Result{}, err
		}
	}

	if err := postProcess(d.store, d.sites, d.bounds); err != nil {
		return Result{}, err
	}

	return Result{Vertices: d.store.Vertices(), Edges: d.store.Outputs()}, nil
}

// insertTopPrefix handles every site sharing the maximum y (§4.4):
// InsertArcHead for the first, InsertTopArc for the rest, each producing
// a degenerate vertical-bisector edge with no second endpoint yet.
func (d *Driver) insertTopPrefix() error {
	if d.siteQ.Len() == 0 {
		return fmt.Errorf("%w: empty site queue reached the sweep", fault.ErrInternal)
	}

	first := d.siteQ.Pop()
	maxY := d.sites[first].Y
	d.sweepY = maxY
	d.tree.InsertArcHead(first)

	prevSite := first
	for d.siteQ.Len() > 0 && d.siteQ.PeekY() == maxY {
		s := d.siteQ.Pop()
		_, bp := d.tree.InsertTopArc(s)
		edgeID := d.store.NewEdgeFromTop(bp, s, prevSite)
		d.tree.SetOpenEdge(bp, edgeID, 1)
		prevSite = s
	}
	return nil
}

func (d *Driver) handleSiteEvent(s int) error {
	x := d.sites[s].X
	arc := d.tree.Locate(x, d.sweepY)
	if arc == beachline.Nil {
		return fmt.Errorf("%w: Locate found no arc above site %d", fault.ErrInternal, s)
	}

	res := d.tree.InsertArcIntoArc(arc, s)
	d.circleQ.Remove(res.Cancelled)

	edgeID := d.store.NewEdgeBetweenBreakpoints(res.BP1, res.BP2, d.tree.Site(res.Left), s)
	d.tree.SetOpenEdge(res.BP1, edgeID, 1)
	d.tree.SetOpenEdge(res.BP2, edgeID, 2)

	leftLeft := d.tree.LeftArcNeighbor(res.Left)
	d.checkCircleEvent(leftLeft, res.Left, res.Middle)

	rightRight := d.tree.RightArcNeighbor(res.Right)
	d.checkCircleEvent(res.Middle, res.Right, rightRight)

	return nil
}

func (d *Driver) handleCircleEvent(ev *events.CircleEvent) error {
	mid := ev.Arc
	midSite := d.tree.Site(mid)
	res := d.tree.RemoveArc(mid)
	d.circleQ.Remove(res.CancelledLeft)
	d.circleQ.Remove(res.CancelledRight)

	leftSite := d.tree.Site(res.Left)
	rightSite := d.tree.Site(res.Right)

	center, err := geometry.CircumCenter(d.sites[leftSite], d.sites[midSite], d.sites[rightSite])
	if err != nil {
		return fmt.Errorf("%w: circle event fired for collinear sites %d,%d,%d", fault.ErrInternal, leftSite, midSite, rightSite)
	}
	inside := d.bounds.Contains(center)
	junction := d.store.NewJunction(center, [3]int{leftSite, midSite, rightSite}, inside)
	d.logger.Printf("sweep: vertex (%.6f,%.6f) inside=%v sites=%d,%d,%d", center.X, center.Y, inside, leftSite, midSite, rightSite)

	for _, bp := range [2]int32{res.BPRemove, res.BPModify} {
		edgeID, end := d.tree.OpenEdge(bp)
		if err := d.store.ResolveToJunction(edgeID, end, junction); err != nil {
			return fmt.Errorf("%w: resolving breakpoint %d onto junction: %v", fault.ErrInternal, bp, err)
		}
	}

	newEdgeID := d.store.NewEdgeFromJunction(res.BPModify, junction, leftSite, rightSite)
	d.tree.SetOpenEdge(res.BPModify, newEdgeID, 1)

	leftLeft := d.tree.LeftArcNeighbor(res.Left)
	d.checkCircleEvent(leftLeft, res.Left, res.Right)
	rightRight := d.tree.RightArcNeighbor(res.Right)
	d.checkCircleEvent(res.Left, res.Right, rightRight)

	return nil
}

// checkCircleEvent is CheckCircleEvent (§4.3): predicts whether the arcs
// left/mid/right will collapse at or below the current sweep line, and if
// so attaches a fresh circle event to mid. A no-op if any arc is missing,
// mid already has a pending event, two of the three sites coincide, the
// triple doesn't turn clockwise, or the predicted trigger is still above
// the sweep line.
func (d *Driver) checkCircleEvent(left, mid, right int32) {
	if left == beachline.Nil || mid == beachline.Nil || right == beachline.Nil {
		return
	}
	if d.tree.PendingEvent(mid) != nil {
		return
	}
	ls, ms, rs := d.tree.Site(left), d.tree.Site(mid), d.tree.Site(right)
	if ls == ms || ms == rs || ls == rs {
		return
	}
	sl, sm, sr := d.sites[ls], d.sites[ms], d.sites[rs]
	if geometry.ClockwiseSign(sl, sm, sr) <= 0 {
		return
	}
	center, err := geometry.CircumCenter(sl, sm, sr)
	if err != nil {
		return
	}
	triggerY := center.Y - center.Dist(sm)
	if triggerY > d.sweepY+d.epsilon {
		return
	}
	ev := d.circleQ.Push(triggerY, mid)
	d.tree.SetPendingEvent(mid, ev)
}
