package trace

// Summary holds aggregated counts for a loaded model. Used by the
// workbench header and tab badges; cheap to recompute, O(actions).
type Summary struct {
	ActionCount     int
	ErrorCount      int
	ConsoleCount    int
	NetworkCount    int
	AttachmentCount int
	DurationMs      float64
}

// Summarize walks the model once and returns aggregate counts.
// A nil model yields the zero Summary so panels render empty rather
// than failing.
func Summarize(m *Model) Summary {
	if m == nil {
		return Summary{}
	}
	s := Summary{
		ActionCount:  len(m.Actions),
		ErrorCount:   len(m.Errors),
		ConsoleCount: len(m.Console),
		NetworkCount: len(m.Network),
		DurationMs:   m.EndTime - m.StartTime,
	}
	for _, a := range m.Actions {
		s.AttachmentCount += len(a.Attachments)
	}
	return s
}
