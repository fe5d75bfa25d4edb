package timeline

// GestureKind identifies what a pointer-down started.
type GestureKind int

const (
	GestureMove GestureKind = iota
	GestureResizeStart
	GestureResizeEnd
	GestureCreate
)

// GrabZone is the part of a slot block the pointer grabbed, which
// selects the drag sub-kind.
type GrabZone int

const (
	GrabBody GrabZone = iota
	GrabStartEdge
	GrabEndEdge
)

// Target is what the pointer went down on. The host resolves hit
// testing (which slot, which edge, which empty track) and hands the
// engine the result.
type Target interface{ isTarget() }

// SlotTarget is a pointer-down on an existing slot block.
type SlotTarget struct {
	ID   string
	Zone GrabZone
}

// TrackTarget is a pointer-down on the empty track of a location row,
// starting a drag-to-create gesture.
type TrackTarget struct {
	Location string
}

func (SlotTarget) isTarget()  {}
func (TrackTarget) isTarget() {}

// Pointer is a pointer position in the host's pixel space.
type Pointer struct {
	X int
	Y int
}

// gestureContext is the transient state of one pointer-down →
// pointer-up interaction. At most one exists at a time; it is destroyed
// unconditionally on pointer-up.
type gestureContext struct {
	kind GestureKind

	slotID    string // empty for create
	originLoc string
	candLoc   string

	originX int
	track   Rect // captured at gesture start, not re-measured

	// Minute pairs. For create, originFrom is the anchor the opposite
	// edge pivots around.
	originFrom int
	originTo   int
	candFrom   int
	candTo     int
}

func (g *gestureContext) span() int {
	return g.originTo - g.originFrom
}
