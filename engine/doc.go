// Package engine is the boundary the presentation layer talks to.
//
// A Session owns the persistent state that outlives a single trace: the
// current BST, the current max-heap and the current graph. It exposes two
// entry points:
//
//   - RunTrace runs a stateless tracer (sorting, searching, graph) and
//     returns its frames.
//   - Apply runs a structure operation (insert, search, delete, extract-max,
//     build, clear) against the current tree, commits the resulting tree
//     (except for search) and returns the frames.
//
// Every call is synchronous and runs to completion under the session lock:
// Idle → Tracing → Committed. No caller can observe a half-built trace or a
// half-committed tree. Malformed requests fail with an error marked
// core.ErrValidation before any frame is produced. Sessions are independent,
// so tests and concurrent users each get their own.
package engine
