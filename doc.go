// Package attrib decides, per work-node and per commit, whether a node
// actually rendered and why. It is the analytical core of a re-render
// profiler: the host reconciler supplies before/after snapshot trees and a
// heuristic performed-work flag, and attrib turns them into an ordered,
// per-node change log with attributed causes.
//
// The flag is an oracle with known false positives: clear is a hard "did not
// render", set only a candidate that is confirmed against the node's actual
// inputs (props, state, ref, subscribed contexts) to suppress bailouts.
// Structural nodes never consult the flag at all.
//
// The whole pass is synchronous and pure. Snapshots stay owned by the host
// and are never retained past the Walk call that supplied them.
package attrib
