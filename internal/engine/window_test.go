package engine

import (
	"fmt"
	"testing"
)

func TestWindowBound(t *testing.T) {
	// For all capacities K and N pushes, length is min(N, K) and the
	// contents are exactly the last min(N, K) samples in push order.
	for _, k := range []int{1, 3, 10, 17} {
		for _, n := range []int{0, 1, 5, 10, 25} {
			w := NewWindow(k)
			for i := 0; i < n; i++ {
				w.Push(Sample{Label: fmt.Sprintf("s%d", i), Load: float64(i)})
			}

			want := n
			if want > k {
				want = k
			}
			if w.Len() != want {
				t.Fatalf("K=%d N=%d: len=%d, want %d", k, n, w.Len(), want)
			}

			samples := w.Samples()
			for i, s := range samples {
				expected := fmt.Sprintf("s%d", n-want+i)
				if s.Label != expected {
					t.Fatalf("K=%d N=%d: sample %d is %s, want %s", k, n, i, s.Label, expected)
				}
			}
		}
	}
}

func TestWindowDefaultCapacity(t *testing.T) {
	w := NewWindow(0)
	if w.Cap() != DefaultWindowSize {
		t.Errorf("expected default capacity %d, got %d", DefaultWindowSize, w.Cap())
	}
}

func TestWindowResizeKeepsNewest(t *testing.T) {
	w := NewWindow(5)
	for i := 0; i < 5; i++ {
		w.Push(Sample{Label: fmt.Sprintf("s%d", i)})
	}

	w.Resize(2)
	if w.Cap() != 2 {
		t.Fatalf("cap should be 2, got %d", w.Cap())
	}
	samples := w.Samples()
	if len(samples) != 2 || samples[0].Label != "s3" || samples[1].Label != "s4" {
		t.Errorf("shrinking must keep the newest samples, got %+v", samples)
	}

	// Pushes after the shrink still respect the new bound.
	w.Push(Sample{Label: "s5"})
	if w.Len() != 2 || w.Samples()[1].Label != "s5" {
		t.Errorf("post-resize push misbehaved: %+v", w.Samples())
	}

	// Growing keeps everything; zero is ignored.
	w.Resize(4)
	if w.Cap() != 4 || w.Len() != 2 {
		t.Errorf("growing should keep samples, cap=%d len=%d", w.Cap(), w.Len())
	}
	w.Resize(0)
	if w.Cap() != 4 {
		t.Errorf("non-positive resize must be ignored, cap=%d", w.Cap())
	}
}

func TestWindowSamplesIsACopy(t *testing.T) {
	w := NewWindow(3)
	w.Push(Sample{Label: "a"})

	snapshot := w.Samples()
	w.Push(Sample{Label: "b"})

	if len(snapshot) != 1 || snapshot[0].Label != "a" {
		t.Error("Samples() must return an independent copy")
	}
}
