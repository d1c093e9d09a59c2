package pipeline

// Options configures a cleaning pass. The zero value runs with the built-in
// filler set and inline removal disabled. An Options value is read-only during
// a pass, so one value may be shared across many documents.
type Options struct {
	// Fillers is the phrase set used by the filler filter. Nil means
	// DefaultFillers().
	Fillers FillerSet

	// InlineFillers enables removal of filler phrases inside lines, not just
	// standalone filler lines.
	InlineFillers bool
}

func (o Options) fillerSet() FillerSet {
	if o.Fillers == nil {
		return DefaultFillers()
	}
	return o.Fillers
}
