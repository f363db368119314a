package input

// Frame is the level-triggered input state sampled once per rendered frame.
type Frame struct {
	PointerX, PointerY float64

	Primary   bool
	Secondary bool

	// Pan is the pan-gesture modifier; Pan together with Primary drags the
	// camera instead of painting.
	Pan bool

	// Zoom is -1, 0 or +1 while a zoom key is held.
	Zoom int
	// Boost speeds up zooming.
	Boost bool
}

// Panning reports whether the frame carries an active pan gesture.
func (f Frame) Panning() bool { return f.Pan && f.Primary }

// Editing reports whether a paint or erase button is held.
func (f Frame) Editing() bool { return f.Primary || f.Secondary }

// EdgeTracker converts per-frame held-key sets into key-release events. Each
// release is reported once, on the frame the key stops being held.
type EdgeTracker struct {
	held map[string]bool
	next map[string]bool
}

// NewEdgeTracker returns a tracker with no keys held.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{held: map[string]bool{}, next: map[string]bool{}}
}

// Released records the keys held this frame and appends every key that was
// held on the previous frame but no longer is.
func (t *EdgeTracker) Released(dst []string, down []string) []string {
	clear(t.next)
	for _, k := range down {
		t.next[k] = true
	}
	for k := range t.held {
		if !t.next[k] {
			dst = append(dst, k)
		}
	}
	t.held, t.next = t.next, t.held
	return dst
}
