// Package searching traces linear and binary search as ArraySnapshots.
//
// Trace returns the frames together with a Result. The Result is the
// authoritative outcome; callers must not infer success from the last frame's
// highlight.
//
// Binary search requires ascending input. When the input is not sorted the
// tracer searches a sorted copy instead, says so in the opening status, and
// the reported index refers to that copy. The caller's slice is never touched.
package searching
