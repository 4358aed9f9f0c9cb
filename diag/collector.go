package diag

// Collector gathers diagnostics for a single parse.
//
// A parse is single-threaded and synchronous (see the package-level
// concurrency notes in the orchestrator): exactly one goroutine ever touches
// a given Collector, so unlike a server-style collector shared across
// requests, this one needs no internal locking.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect appends a diagnostic.
//
// Collect panics if d is a zero-value Diagnostic, which indicates it was
// never passed through [DiagnosticBuilder.Build].
func (c *Collector) Collect(d Diagnostic) {
	if d.IsZero() {
		panic("diag.Collector.Collect: zero-value Diagnostic")
	}
	c.diagnostics = append(c.diagnostics, d)
}

// HasErrors reports whether any collected diagnostic has SeverityError.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// Result returns an immutable snapshot of the collected diagnostics, in the
// order they were collected.
func (c *Collector) Result() []Diagnostic {
	if len(c.diagnostics) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}
