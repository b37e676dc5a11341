// Package event is a minimal publish/subscribe mechanism for solver
// instrumentation, mirroring the way the teacher's traversal packages
// expose OnVisit/OnEnqueue/OnDequeue hooks without the core depending on
// any particular consumer.
//
// An Event names one edge mutation. The propagation engine and the search
// driver's guess/backtrack steps are the only producers; a host (a CLI
// renderer, a future GUI bridge) is the consumer. The default Publisher is
// a no-op, so callers that never attach one pay nothing.
package event
