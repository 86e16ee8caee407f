package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// JSONOpts configures JSON diagnostic output.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	// Max caps how many diagnostics are serialized; 0 means all.
	Max int
}
