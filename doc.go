// Package voronoi builds the Voronoi diagram of a set of 2D points
// inside a bounding rectangle using Fortune's sweep-line algorithm, and
// offers Lloyd relaxation (package lloyd) and rasterized output
// (package render) on top of it.
//
// The sweep itself (arc insertion, circle-event prediction, breakpoint
// rewiring) lives in internal packages addressed by small integer ids
// rather than pointers, so a diagram's intermediate state can be
// discarded in one garbage-collection pass instead of an explicit
// teardown walk.
package voronoi
