package synth

// Bus is the single shared audio destination notes are scheduled on.
type Bus interface {
	SampleRate() int
	Schedule(v Voice)
	// Reset discards everything scheduled and starts a fresh mixer at the
	// same master gain.
	Reset()
}
