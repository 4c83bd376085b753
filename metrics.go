package asyncload

// Gauge is an external, injected integer counter. The Loader never looks
// one up from a global registry; it is handed two instances at
// construction and only ever calls Inc/Dec on them, per the "no global
// mutable state" rule: metric collection and export are the surrounding
// application's concern, not this library's.
type Gauge interface {
	Inc()
	Dec()
}

// noopGauge satisfies Gauge for callers that don't care about the
// counters (e.g. tests, or single-shot tools).
type noopGauge struct{}

func (noopGauge) Inc() {}
func (noopGauge) Dec() {}
