package mehr

import "github.com/arkedion/mehr/rectangle"

// hofMode selects the Hall of Fame's admission policy: threshold mode
// accumulates every distinct rectangle whose volume clears a fixed bar;
// top mode keeps an ordered, strictly-increasing record of new bests.
type hofMode int

const (
	thresholdMode hofMode = iota
	topMode
)

type haloEntry struct {
	rect   rectangle.Rectangle
	volume float64
}

// HallOfFame accumulates the significant rectangles a Search discovers.
// It is owned exclusively by the goroutine running Search; workers never
// touch it directly, only return results the driver admits afterward.
type HallOfFame struct {
	mode      hofMode
	threshold float64
	byKey     map[string]haloEntry // threshold mode
	ordered   []rectangle.Rectangle // top mode, strictly increasing volume
	maxFound  float64
	sizes     []int // telemetry: len(hof) after each batch
}

func newHallOfFame(threshold *float64) *HallOfFame {
	if threshold != nil {
		return &HallOfFame{
			mode:      thresholdMode,
			threshold: *threshold,
			byKey:     make(map[string]haloEntry),
		}
	}

	return &HallOfFame{mode: topMode}
}

// Len returns the number of rectangles currently held.
func (h *HallOfFame) Len() int {
	if h.mode == thresholdMode {
		return len(h.byKey)
	}

	return len(h.ordered)
}

// Rectangles returns every rectangle in the Hall of Fame. In top mode the
// order is the arrival order of new-best rectangles (strictly increasing
// volume); in threshold mode the order is unspecified, per spec.
func (h *HallOfFame) Rectangles() []rectangle.Rectangle {
	if h.mode == topMode {
		out := make([]rectangle.Rectangle, len(h.ordered))
		copy(out, h.ordered)

		return out
	}

	out := make([]rectangle.Rectangle, 0, len(h.byKey))
	for _, e := range h.byKey {
		out = append(out, e.rect)
	}

	return out
}

// Sizes returns the telemetry series: the Hall of Fame's size recorded
// after every completed batch.
func (h *HallOfFame) Sizes() []int {
	out := make([]int, len(h.sizes))
	copy(out, h.sizes)

	return out
}

// Threshold mode reports whether this Hall of Fame was built in threshold
// mode (true) or top mode (false).
func (h *HallOfFame) ThresholdMode() bool { return h.mode == thresholdMode }

// admit applies the admission rule from spec §4.E step 3 to one worker
// result, mutating the Hall of Fame in place, and reports whether the
// rectangle contributed (a caller resets its convergence counter on
// true, increments it on false).
func (h *HallOfFame) admit(rect rectangle.Rectangle, interior, interiorOnly bool) bool {
	admissible := interior || !interiorOnly
	if !admissible {
		return false
	}

	volume := rect.Volume()

	switch h.mode {
	case thresholdMode:
		if volume <= h.threshold {
			return false
		}
		key := rect.Key()
		if _, exists := h.byKey[key]; exists {
			return false
		}
		h.byKey[key] = haloEntry{rect: rect, volume: volume}

		return true
	case topMode:
		if volume <= h.maxFound {
			return false
		}
		h.ordered = append(h.ordered, rect)
		h.maxFound = volume

		return true
	default:
		return false
	}
}

func (h *HallOfFame) recordSize() {
	h.sizes = append(h.sizes, h.Len())
}
