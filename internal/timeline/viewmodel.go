package timeline

import "hash/fnv"

// palette is the fixed slot color set used when a slot carries no
// explicit color. Indexed by a stable hash of the slot ID so a slot
// keeps its color across rebuilds.
var palette = []string{
	"#8aadf4", // blue
	"#a6da95", // green
	"#eed49f", // yellow
	"#f5a97f", // peach
	"#c6a0f6", // mauve
	"#8bd5ca", // teal
	"#ee99a0", // maroon
	"#f0c6c6", // flamingo
}

// ColorFor returns the palette color for a slot identity. Deterministic
// and side-effect free: the same id always yields the same color.
func ColorFor(id string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return palette[h.Sum32()%uint32(len(palette))]
}

// Span is a non-working overlay segment in track percentages.
type Span struct {
	LeftPct  float64
	WidthPct float64
}

// SlotView is the rendering-ready projection of one committed slot.
// Rebuilt wholesale on every data change; mutated only by the engine's
// live-gesture preview.
type SlotView struct {
	ID          string
	LeftPct     float64
	WidthPct    float64
	FromMinutes int // snapped and clamped
	ToMinutes   int
	Color       string
	Invalid     bool // transient post-revert flash
	Live        bool // subject of the in-flight gesture preview
	Raw         Slot // back-reference to the committed snapshot
}

// Board is the full view model for one day: location rows in first-seen
// order, their slot projections, and non-working overlays. It is
// replaced, never patched, whenever committed data or working hours
// change.
type Board struct {
	Locations  []string
	Slots      map[string][]*SlotView
	NonWorking map[string][]Span
}

// Rebuild projects committed slots and working hours into a fresh
// Board. Every committed interval is clamped to the day and snapped to
// the grid; the render floor applies to width only.
func Rebuild(committed []Slot, hours HoursMap) *Board {
	b := &Board{
		Slots:      make(map[string][]*SlotView),
		NonWorking: make(map[string][]Span),
	}

	for _, s := range committed {
		if _, seen := b.Slots[s.Location]; !seen {
			b.Locations = append(b.Locations, s.Location)
			b.Slots[s.Location] = nil
		}
		b.Slots[s.Location] = append(b.Slots[s.Location], newSlotView(s))
	}

	for _, loc := range b.Locations {
		b.NonWorking[loc] = NonWorkingSpans(hours[loc])
	}

	return b
}

// newSlotView projects a single committed slot.
func newSlotView(s Slot) *SlotView {
	from := Snap(Clamp(s.FromMinutes(), 0, MinutesPerDay), SnapStep)
	to := Snap(Clamp(s.ToMinutes(), 0, MinutesPerDay), SnapStep)
	left, width := MinutesToPercent(from, to)

	color := s.Color
	if color == "" {
		color = ColorFor(s.ID)
	}

	return &SlotView{
		ID:          s.ID,
		LeftPct:     left,
		WidthPct:    width,
		FromMinutes: from,
		ToMinutes:   to,
		Color:       color,
		Raw:         s,
	}
}

// NonWorkingSpans computes the complement of the working window within
// the day: zero, one, or two segments. Exported so hosts can shade rows
// that carry no slots yet.
func NonWorkingSpans(entries []HoursEntry) []Span {
	if len(entries) == 0 {
		return nil
	}
	start := clockToMinutes(entries[0].Start)
	end := clockToMinutes(entries[0].End)

	var spans []Span
	if start > 0 {
		left, width := MinutesToPercent(0, start)
		spans = append(spans, Span{LeftPct: left, WidthPct: width})
	}
	if end < MinutesPerDay {
		left, width := MinutesToPercent(end, MinutesPerDay)
		spans = append(spans, Span{LeftPct: left, WidthPct: width})
	}
	return spans
}

// Find returns the view for a slot id, or nil.
func (b *Board) Find(id string) *SlotView {
	for _, loc := range b.Locations {
		for _, sv := range b.Slots[loc] {
			if sv.ID == id {
				return sv
			}
		}
	}
	return nil
}
