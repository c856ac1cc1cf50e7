package cbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the package's global core tracer. It is the direct
// replacement for the original C sources' CEBDBG macro, which printed a
// line for every descent step when compiled with -DDEBUG: instead of a
// compile-time switch, tracing here is a runtime trace level, set with
// gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug).
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// traceDescend logs, at debug level, the point at which the descent
// engine leaves its loop, labelled "l==r", "xor>", "mismatch" or "loop"
// after the corresponding trace points of _cebu_descend.
func traceDescend(step string, meth walkMethod, cur, prev Metric) {
	if T() == nil {
		return
	}
	T().Debugf("descend %-8s meth=%-3s cur=%#x prev=%#x", step, meth, cur, prev)
}
