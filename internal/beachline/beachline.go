// Package beachline is the arena-backed beach-line tree (§4.2): an
// ordered binary tree whose leaves are arcs and whose internal nodes are
// breakpoints, addressed by int32 node ids instead of pointers so the
// whole tree can be torn down without a traversal and without the
// use-after-free/double-delete hazards raw back-references invite (§9
// Design Notes).
package beachline

import (
	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/internal/events"
)

// Nil is the sentinel "no node" id.
const Nil int32 = -1

// Kind tags whether a node is a beach-line arc (leaf) or a breakpoint
// (internal node).
type Kind uint8

const (
	KindArc Kind = iota
	KindBreakpoint
)

// node is one beach-line element. Only the fields relevant to its Kind
// are meaningful; the rest are zero.
type node struct {
	kind          Kind
	parent        int32
	left, right   int32
	site          int                  // KindArc
	pending       *events.CircleEvent  // KindArc: weak ref to this arc's predicted collapse, §4.3
	openEdge      int32                // KindBreakpoint: edge id this breakpoint's open end tracks
	openEdgeEnd   int                  // KindBreakpoint: 1 or 2, which end of openEdge
}

// Tree is the arena-backed beach line for one sweep.
type Tree struct {
	nodes []node
	root  int32
	sites []geometry.Point
}

// New returns an empty tree over the given site coordinates (indexed by
// the same Site indices the sweep driver uses).
func New(sites []geometry.Point) *Tree {
	return &Tree{root: Nil, sites: sites}
}

func (t *Tree) alloc(n node) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Empty reports whether the tree has no arcs yet.
func (t *Tree) Empty() bool { return t.root == Nil }

// Root returns the root node id.
func (t *Tree) Root() int32 { return t.root }

// IsArc reports whether id names an arc leaf.
func (t *Tree) IsArc(id int32) bool { return id != Nil && t.nodes[id].kind == KindArc }

// Site returns the site index an arc owns. id must be an arc.
func (t *Tree) Site(id int32) int { return t.nodes[id].site }

// PendingEvent returns the circle event currently predicted to collapse
// the arc id, or nil.
func (t *Tree) PendingEvent(id int32) *events.CircleEvent { return t.nodes[id].pending }

// SetPendingEvent attaches (or clears, with nil) the circle event
// predicted to collapse arc id.
func (t *Tree) SetPendingEvent(id int32, ev *events.CircleEvent) { t.nodes[id].pending = ev }

// OpenEdge returns the (edgeID, end) pair the breakpoint id currently
// tracks. id must be a breakpoint.
func (t *Tree) OpenEdge(id int32) (int32, int) {
	n := &t.nodes[id]
	return n.openEdge, n.openEdgeEnd
}

// SetOpenEdge records which edge (and which of its two ends, 1 or 2) the
// breakpoint id currently tracks.
func (t *Tree) SetOpenEdge(id int32, edgeID int32, end int) {
	n := &t.nodes[id]
	n.openEdge = edgeID
	n.openEdgeEnd = end
}

// InsertArcHead creates the very first arc in an empty tree.
func (t *Tree) InsertArcHead(site int) int32 {
	id := t.alloc(node{kind: KindArc, parent: Nil, left: Nil, right: Nil, site: site})
	t.root = id
	return id
}

// LeftArc descends through right children from subtree until reaching a
// leaf — the arc that borders a breakpoint from the left when subtree is
// that breakpoint's left child (§4.2).
func (t *Tree) LeftArc(subtree int32) int32 {
	n := subtree
	for t.nodes[n].kind != KindArc {
		n = t.nodes[n].right
	}
	return n
}

// RightArc descends through left children from subtree until reaching a
// leaf — the arc that borders a breakpoint from the right when subtree is
// that breakpoint's right child (§4.2).
func (t *Tree) RightArc(subtree int32) int32 {
	n := subtree
	for t.nodes[n].kind != KindArc {
		n = t.nodes[n].left
	}
	return n
}

// LeftBreakpoint climbs from node until arriving at an ancestor from its
// right subtree — the nearest breakpoint bordering node from the left.
// Returns Nil if node is the leftmost element in the tree.
func (t *Tree) LeftBreakpoint(id int32) int32 {
	n := id
	p := t.nodes[n].parent
	for p != Nil && t.nodes[p].left == n {
		n = p
		p = t.nodes[n].parent
	}
	return p
}

// RightBreakpoint climbs from node until arriving at an ancestor from its
// left subtree — the nearest breakpoint bordering node from the right.
// Returns Nil if node is the rightmost element in the tree.
func (t *Tree) RightBreakpoint(id int32) int32 {
	n := id
	p := t.nodes[n].parent
	for p != Nil && t.nodes[p].right == n {
		n = p
		p = t.nodes[n].parent
	}
	return p
}

// LeftArcNeighbor returns the arc immediately to the left of arc id in
// beach-line order, or Nil if id is leftmost.
func (t *Tree) LeftArcNeighbor(id int32) int32 {
	bp := t.LeftBreakpoint(id)
	if bp == Nil {
		return Nil
	}
	return t.LeftArc(t.nodes[bp].left)
}

// RightArcNeighbor returns the arc immediately to the right of arc id in
// beach-line order, or Nil if id is rightmost.
func (t *Tree) RightArcNeighbor(id int32) int32 {
	bp := t.RightBreakpoint(id)
	if bp == Nil {
		return Nil
	}
	return t.RightArc(t.nodes[bp].right)
}

// breakpointX computes the current x of breakpoint id at sweepY, per
// §4.2 Locate: the intersection of the parabolas whose foci are the arc
// bordering id from the left and the arc bordering it from the right.
func (t *Tree) breakpointX(id int32, sweepY float64) float64 {
	n := &t.nodes[id]
	leftSite := t.sites[t.nodes[t.LeftArc(n.left)].site]
	rightSite := t.sites[t.nodes[t.RightArc(n.right)].site]
	return geometry.ParabolaIntersectX(sweepY, leftSite, rightSite)
}

// Locate descends from the root to find the arc currently above x at the
// given sweep-line height.
func (t *Tree) Locate(x, sweepY float64) int32 {
	n := t.root
	for t.nodes[n].kind == KindBreakpoint {
		if x < t.breakpointX(n, sweepY) {
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
	}
	return n
}

// InsertTopArc adds a new arc to the left of the current root arc with a
// fresh breakpoint as the new root. Only used for the degenerate prefix
// of several topmost sites sharing the same y (§4.4). Returns the new
// arc id and the new breakpoint id; the caller is responsible for
// creating the associated edge record (its second endpoint has no
// computed position, §4.2).
func (t *Tree) InsertTopArc(site int) (newArc, bp int32) {
	oldRoot := t.root
	newArcID := t.alloc(node{kind: KindArc, site: site})
	bpID := t.alloc(node{kind: KindBreakpoint, parent: Nil, left: newArcID, right: oldRoot, openEdge: -1})
	t.nodes[newArcID].parent = bpID
	t.nodes[oldRoot].parent = bpID
	t.root = bpID
	return newArcID, bpID
}

// InsertResult carries every node id InsertArcIntoArc produces.
type InsertResult struct {
	Left, Middle, Right int32 // the three post-split arcs (left and right keep the old site)
	BP1, BP2            int32 // BP1 borders Left/Middle, BP2 borders Middle/Right
	Cancelled           *events.CircleEvent
}

// InsertArcIntoArc splits arc (site σ) into three arcs and replaces it
// with the subtree bp1(L', bp2(M, R')), per §4.2. Any pending circle
// event on arc is cancelled and returned so the caller can remove it from
// the circle queue.
func (t *Tree) InsertArcIntoArc(arc int32, site int) InsertResult {
	old := t.nodes[arc]
	cancelled := old.pending

	parent := old.parent
	leftID := t.alloc(node{kind: KindArc, site: old.site})
	bp2ID := t.alloc(node{kind: KindBreakpoint})
	middleID := t.alloc(node{kind: KindArc, site: site})
	rightID := t.alloc(node{kind: KindArc, site: old.site})
	bp1ID := t.alloc(node{kind: KindBreakpoint})

	t.nodes[bp1ID] = node{kind: KindBreakpoint, parent: parent, left: leftID, right: bp2ID}
	t.nodes[bp2ID] = node{kind: KindBreakpoint, parent: bp1ID, left: middleID, right: rightID}
	t.nodes[leftID].parent = bp1ID
	t.nodes[middleID].parent = bp2ID
	t.nodes[rightID].parent = bp2ID

	if parent == Nil {
		t.root = bp1ID
	} else if t.nodes[parent].left == arc {
		t.nodes[parent].left = bp1ID
	} else {
		t.nodes[parent].right = bp1ID
	}

	return InsertResult{Left: leftID, Middle: middleID, Right: rightID, BP1: bp1ID, BP2: bp2ID, Cancelled: cancelled}
}

// RemoveResult carries every node id and detached breakpoint RemoveArc
// touches.
type RemoveResult struct {
	Left, Right         int32 // the arcs flanking the removed arc, after removal
	BPRemove            int32 // the breakpoint that vanished (arc's parent)
	BPModify            int32 // the breakpoint that survives as the new Left/Right boundary
	CancelledLeft       *events.CircleEvent
	CancelledRight      *events.CircleEvent
}

// RemoveArc collapses arc (which must have non-nil left and right arc
// neighbors) out of the tree, rewiring its parent breakpoint away and
// leaving the other flanking breakpoint as the sole boundary between
// Left and Right (§4.2). Any pending circle events on the flanking arcs
// are cancelled and returned for the caller to remove from the queue.
func (t *Tree) RemoveArc(arc int32) RemoveResult {
	left := t.LeftArcNeighbor(arc)
	right := t.RightArcNeighbor(arc)

	bpLeft := t.LeftBreakpoint(arc)
	bpRight := t.RightBreakpoint(arc)

	parent := t.nodes[arc].parent
	var bpRemove, bpModify int32
	if bpLeft == parent {
		bpRemove, bpModify = bpLeft, bpRight
	} else {
		bpRemove, bpModify = bpRight, bpLeft
	}

	sibling := t.nodes[bpRemove].left
	if sibling == arc {
		sibling = t.nodes[bpRemove].right
	}
	grandparent := t.nodes[bpRemove].parent
	t.nodes[sibling].parent = grandparent
	if grandparent == Nil {
		t.root = sibling
	} else if t.nodes[grandparent].left == bpRemove {
		t.nodes[grandparent].left = sibling
	} else {
		t.nodes[grandparent].right = sibling
	}

	var cl, cr *events.CircleEvent
	if left != Nil {
		cl = t.nodes[left].pending
		t.nodes[left].pending = nil
	}
	if right != Nil {
		cr = t.nodes[right].pending
		t.nodes[right].pending = nil
	}

	return RemoveResult{
		Left: left, Right: right,
		BPRemove: bpRemove, BPModify: bpModify,
		CancelledLeft: cl, CancelledRight: cr,
	}
}
