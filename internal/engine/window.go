package engine

// Sample is one point of the load history chart: a wall-clock label plus
// the metric tuple read from a successful status fetch.
type Sample struct {
	Label       string
	Load        float64
	ActiveTasks int
}

// DefaultWindowSize is how many samples the dashboard chart keeps.
const DefaultWindowSize = 10

// Window is a fixed-capacity FIFO buffer of samples. Push always succeeds;
// once the window is full the oldest sample is evicted. A failed status
// fetch simply contributes no sample, leaving a gap on the time axis.
type Window struct {
	samples  []Sample
	capacity int
}

// NewWindow creates a window holding at most capacity samples. A capacity
// of zero or less falls back to DefaultWindowSize.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindowSize
	}
	return &Window{
		samples:  make([]Sample, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest one at capacity.
func (w *Window) Push(s Sample) {
	if len(w.samples) == w.capacity {
		copy(w.samples, w.samples[1:])
		w.samples[len(w.samples)-1] = s
		return
	}
	w.samples = append(w.samples, s)
}

// Resize changes the capacity, keeping the newest samples when the
// window shrinks. Non-positive capacities are ignored.
func (w *Window) Resize(capacity int) {
	if capacity <= 0 || capacity == w.capacity {
		return
	}
	if len(w.samples) > capacity {
		kept := make([]Sample, capacity)
		copy(kept, w.samples[len(w.samples)-capacity:])
		w.samples = kept
	}
	w.capacity = capacity
}

// Len returns the number of buffered samples.
func (w *Window) Len() int {
	return len(w.samples)
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return w.capacity
}

// Samples returns a copy of the buffer in insertion order, so a render
// pass never observes a half-updated window.
func (w *Window) Samples() []Sample {
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)
	return out
}
