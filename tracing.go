package chunkseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer. Callers (tests, applications) install
// a concrete tracer by setting gtrace.CoreTracer before using a Sequence.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
