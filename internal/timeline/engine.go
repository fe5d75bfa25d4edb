package timeline

import (
	"time"

	"github.com/google/uuid"
)

// Transient signal durations and the preview placeholder identity.
const (
	// InvalidFlashDuration is how long a reverted slot stays flagged.
	InvalidFlashDuration = 700 * time.Millisecond
	// CreationWarningDuration is how long a create warning stays up
	// unless a valid state clears it first.
	CreationWarningDuration = 2500 * time.Millisecond
	// NowIndicatorInterval is the recompute cadence the host should
	// drive Tick with.
	NowIndicatorInterval = time.Minute

	// previewSlotID marks the synthetic slot shown during a create
	// gesture. Never committed.
	previewSlotID = "~create-preview"

	placeholderTracking = "unassigned"
)

// WarningReason distinguishes the two rejection causes a create gesture
// can surface.
type WarningReason string

const (
	WarnConflict WarningReason = "conflict"
	WarnNonWork  WarningReason = "nonwork"
)

// CreationWarning is the non-blocking warning shown during and after a
// create gesture.
type CreationWarning struct {
	Reason  WarningReason
	Message string
}

// Config is everything the engine needs at initialization.
type Config struct {
	Committed        []Slot
	Hours            HoursMap
	ReferenceDay     string // "YYYY-MM-DD"; the day all slots belong to
	TimeRangeLabel   string // display only, never parsed
	ShowNowIndicator bool

	Locator RowLocator

	// Now is injectable for testing; defaults to time.Now.
	Now func() time.Time
	// NewID mints identifiers for created slots; defaults to UUIDs.
	NewID func() string

	// OnSlotChanged fires exactly once per successful commit (move,
	// resize, or creation), never on revert or no-op.
	OnSlotChanged func(Slot)
}

// Inputs is the subset of Config the host may replace after
// initialization. Replacing inputs cancels any in-flight gesture and
// triggers a full rebuild.
type Inputs struct {
	Committed        []Slot
	Hours            HoursMap
	ReferenceDay     string
	ShowNowIndicator bool
}

// Engine owns the gesture lifecycle over a committed-slot snapshot.
// Single-threaded by contract: all methods must be called from the
// host's event loop. Pointer handlers are no-ops without an active
// gesture and after disposal.
type Engine struct {
	committed []Slot
	hours     HoursMap

	referenceDay   string
	timeRangeLabel string
	showNow        bool

	locator       RowLocator
	now           func() time.Time
	newID         func() string
	onSlotChanged func(Slot)

	board  *Board
	ctx    *gestureContext
	nowPct float64

	flashID    string
	flashUntil time.Time

	warning      *CreationWarning
	warningUntil time.Time

	disposed bool
}

// New creates an uninitialized engine. Initialize must be called before
// pointer events are delivered.
func New() *Engine {
	return &Engine{nowPct: NowHidden}
}

// Initialize wires the engine to its host and performs the first
// rebuild.
func (e *Engine) Initialize(cfg Config) {
	e.committed = append([]Slot(nil), cfg.Committed...)
	e.hours = cfg.Hours
	e.referenceDay = cfg.ReferenceDay
	e.timeRangeLabel = cfg.TimeRangeLabel
	e.showNow = cfg.ShowNowIndicator
	e.locator = cfg.Locator
	e.now = cfg.Now
	if e.now == nil {
		e.now = time.Now
	}
	e.newID = cfg.NewID
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	e.onSlotChanged = cfg.OnSlotChanged
	e.disposed = false

	e.rebuild()
	e.nowPct = NowPercent(e.referenceDay, e.now(), e.showNow)
}

// SetInputs replaces the committed snapshot and/or working hours. Any
// in-flight gesture is canceled so gesture code never reads stale row
// membership.
func (e *Engine) SetInputs(in Inputs) {
	if e.disposed {
		return
	}
	e.ctx = nil
	e.committed = append([]Slot(nil), in.Committed...)
	e.hours = in.Hours
	e.referenceDay = in.ReferenceDay
	e.showNow = in.ShowNowIndicator
	e.rebuild()
	e.nowPct = NowPercent(e.referenceDay, e.now(), e.showNow)
}

// Dispose tears the engine down. All transient state and timers are
// dropped; subsequent pointer events and ticks are no-ops.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.ctx = nil
	e.flashID = ""
	e.warning = nil
	e.nowPct = NowHidden
}

// Board returns the current projection: the committed view, or the live
// preview while a gesture is in flight.
func (e *Engine) Board() *Board {
	return e.board
}

// Committed returns a copy of the current committed snapshot.
func (e *Engine) Committed() []Slot {
	return append([]Slot(nil), e.committed...)
}

// NowPct returns the now-indicator position as a percentage of the day,
// or NowHidden.
func (e *Engine) NowPct() float64 {
	return e.nowPct
}

// TimeRangeLabel returns the display-only range label.
func (e *Engine) TimeRangeLabel() string {
	return e.timeRangeLabel
}

// ReferenceDay returns the day the board displays.
func (e *Engine) ReferenceDay() string {
	return e.referenceDay
}

// Gesturing reports whether a gesture is in flight.
func (e *Engine) Gesturing() bool {
	return e.ctx != nil
}

// InvalidFlashID returns the id of the slot currently flashing invalid,
// or "".
func (e *Engine) InvalidFlashID() string {
	return e.flashID
}

// CreationWarning returns the active create warning, or nil.
func (e *Engine) CreationWarning() *CreationWarning {
	return e.warning
}

// Tick clears expired transient state and recomputes the now-indicator.
// The host drives it from its timer loop; each transient is
// individually cancelable by simply expiring.
func (e *Engine) Tick(now time.Time) {
	if e.disposed {
		return
	}
	changed := false
	if e.flashID != "" && now.After(e.flashUntil) {
		e.flashID = ""
		changed = true
	}
	if e.warning != nil && now.After(e.warningUntil) {
		e.warning = nil
	}
	if changed {
		// A rebuild mid-gesture would drop the live candidate.
		if e.ctx != nil {
			e.preview()
		} else {
			e.rebuild()
		}
	}
	e.nowPct = NowPercent(e.referenceDay, now, e.showNow)
}

// PointerDown starts a gesture. Starting any gesture cancels an
// in-flight one of either kind: at most one context exists at a time.
func (e *Engine) PointerDown(target Target, p Pointer) {
	if e.disposed {
		return
	}
	if e.ctx != nil {
		// Pre-empted: discard the old candidate without committing.
		e.ctx = nil
	}

	switch t := target.(type) {
	case SlotTarget:
		slot, ok := e.slotByID(t.ID)
		if !ok {
			e.rebuild()
			return
		}
		_, track, ok := e.locateRow(p)
		if !ok {
			e.rebuild()
			return
		}
		kind := GestureMove
		switch t.Zone {
		case GrabStartEdge:
			kind = GestureResizeStart
		case GrabEndEdge:
			kind = GestureResizeEnd
		}
		from := slot.FromMinutes()
		to := slot.ToMinutes()
		// A slot narrower than the minimum span cannot anchor a resize:
		// the edge clamps would invert. The grab degrades to a move.
		if kind != GestureMove && to-from < MinSpanMinutes {
			kind = GestureMove
		}
		e.ctx = &gestureContext{
			kind:       kind,
			slotID:     slot.ID,
			originLoc:  slot.Location,
			candLoc:    slot.Location,
			originX:    p.X,
			track:      track,
			originFrom: from,
			originTo:   to,
			candFrom:   from,
			candTo:     to,
		}

	case TrackTarget:
		_, track, ok := e.locateRow(p)
		if !ok {
			e.rebuild()
			return
		}
		// The create candidate tracks raw minutes; snapping happens at
		// evaluation time so a short backward drag can still be
		// recognized as below the minimum span.
		m := PixelToMinutes(p.X, track.Left, track.Width, 1)
		e.ctx = &gestureContext{
			kind:       GestureCreate,
			originLoc:  t.Location,
			candLoc:    t.Location,
			originX:    p.X,
			track:      track,
			originFrom: m,
			originTo:   m,
			candFrom:   m,
			candTo:     m,
		}
	}

	e.preview()
}

// PointerMove advances the in-flight gesture. No-op without one.
func (e *Engine) PointerMove(p Pointer) {
	if e.disposed || e.ctx == nil {
		return
	}
	ctx := e.ctx

	switch ctx.kind {
	case GestureCreate:
		cur := PixelToMinutes(p.X, ctx.track.Left, ctx.track.Width, 1)
		if cur < ctx.originFrom {
			ctx.candFrom, ctx.candTo = cur, ctx.originFrom
		} else {
			ctx.candFrom, ctx.candTo = ctx.originFrom, cur
		}
		e.updateCreateWarning()

	default:
		delta := DeltaMinutes(p.X-ctx.originX, ctx.track.Width, SnapStep)
		switch ctx.kind {
		case GestureMove:
			span := ctx.span()
			ctx.candFrom = Clamp(Snap(ctx.originFrom+delta, SnapStep), 0, MinutesPerDay-span)
			ctx.candTo = ctx.candFrom + span
		case GestureResizeStart:
			ctx.candFrom = Clamp(Snap(ctx.originFrom+delta, SnapStep), 0, ctx.originTo-MinSpanMinutes)
			ctx.candTo = ctx.originTo
		case GestureResizeEnd:
			ctx.candFrom = ctx.originFrom
			ctx.candTo = Clamp(Snap(ctx.originTo+delta, SnapStep), ctx.originFrom+MinSpanMinutes, MinutesPerDay)
		}
		if loc, _, ok := e.locateRow(p); ok {
			ctx.candLoc = loc
		}
	}

	e.preview()
}

// PointerUp finishes the in-flight gesture: commit or revert for drags,
// create or abandon for creation. The gesture context is destroyed
// unconditionally.
func (e *Engine) PointerUp(Pointer) {
	if e.disposed || e.ctx == nil {
		return
	}
	ctx := e.ctx
	defer func() { e.ctx = nil }()

	if ctx.kind == GestureCreate {
		e.finishCreate(ctx)
		return
	}
	e.finishDrag(ctx)
}

// finishDrag runs the final verdict and either commits the candidate
// into the snapshot or reverts and flashes the subject.
func (e *Engine) finishDrag(ctx *gestureContext) {
	if ctx.candLoc == ctx.originLoc && ctx.candFrom == ctx.originFrom && ctx.candTo == ctx.originTo {
		// No-op gesture: nothing to commit, nothing to notify.
		e.rebuild()
		return
	}

	checker := NewChecker(e.committed, e.hours)
	v := checker.Check(ctx.candLoc, ctx.candFrom, ctx.candTo, ctx.slotID)
	if !v.OK() {
		// Revert: drop all preview mutations, flash the subject.
		e.flashID = ctx.slotID
		e.flashUntil = e.now().Add(InvalidFlashDuration)
		e.rebuild()
		return
	}

	for i := range e.committed {
		if e.committed[i].ID != ctx.slotID {
			continue
		}
		s := &e.committed[i]
		s.Location = ctx.candLoc
		s.DateTimeFrom = ToDateTime(s.DateTimeFrom, ctx.candFrom)
		s.DateTimeTo = ToDateTime(s.DateTimeTo, ctx.candTo)
		e.rebuild()
		if e.onSlotChanged != nil {
			e.onSlotChanged(*s)
		}
		return
	}
	e.rebuild()
}

// finishCreate applies the create-gesture policy: sub-minimum spans are
// abandoned silently, invalid placements abandon with a warning, valid
// ones synthesize and commit a new slot.
func (e *Engine) finishCreate(ctx *gestureContext) {
	if ctx.candTo-ctx.candFrom < MinSpanMinutes {
		e.warning = nil
		e.rebuild()
		return
	}

	from := Snap(ctx.candFrom, SnapStep)
	to := Snap(ctx.candTo, SnapStep)

	checker := NewChecker(e.committed, e.hours)
	v := checker.Check(ctx.candLoc, from, to, "")
	if v.OutsideHours {
		e.warn(WarnNonWork)
		e.rebuild()
		return
	}
	if v.Conflict {
		e.warn(WarnConflict)
		e.rebuild()
		return
	}

	slot := Slot{
		ID:             e.newID(),
		TrackingNumber: placeholderTracking,
		Carrier:        placeholderTracking,
		Location:       ctx.candLoc,
		DateTimeFrom:   ToDateTime(e.referenceDay, from),
		DateTimeTo:     ToDateTime(e.referenceDay, to),
	}
	e.committed = append(e.committed, slot)
	e.warning = nil
	e.rebuild()
	if e.onSlotChanged != nil {
		e.onSlotChanged(slot)
	}
}

// updateCreateWarning live-evaluates the create candidate so the host
// can show a non-blocking hint. A valid state clears the warning
// immediately.
func (e *Engine) updateCreateWarning() {
	ctx := e.ctx
	checker := NewChecker(e.committed, e.hours)
	v := checker.Check(ctx.candLoc, Snap(ctx.candFrom, SnapStep), Snap(ctx.candTo, SnapStep), "")
	switch {
	case v.OK():
		e.warning = nil
	case v.OutsideHours:
		e.warn(WarnNonWork)
	default:
		e.warn(WarnConflict)
	}
}

// warn replaces the active warning and restarts its auto-hide window.
func (e *Engine) warn(reason WarningReason) {
	msg := "overlaps an existing slot"
	if reason == WarnNonWork {
		msg = "outside working hours"
	}
	e.warning = &CreationWarning{Reason: reason, Message: msg}
	e.warningUntil = e.now().Add(CreationWarningDuration)
}

// rebuild replaces the board from the committed snapshot and re-applies
// transient marks.
func (e *Engine) rebuild() {
	e.board = Rebuild(e.committed, e.hours)
	e.applyTransient(e.board)
}

// preview replaces the board with the live-gesture projection: the
// committed snapshot with the candidate overlaid, recomputed per move
// and discarded on gesture end. Committed data stays untouched.
func (e *Engine) preview() {
	ctx := e.ctx
	if ctx == nil {
		e.rebuild()
		return
	}

	projected := append([]Slot(nil), e.committed...)
	liveID := ctx.slotID

	if ctx.kind == GestureCreate {
		liveID = previewSlotID
		projected = append(projected, Slot{
			ID:           previewSlotID,
			Location:     ctx.candLoc,
			DateTimeFrom: ToDateTime(e.referenceDay, ctx.candFrom),
			DateTimeTo:   ToDateTime(e.referenceDay, ctx.candTo),
		})
	} else {
		for i := range projected {
			if projected[i].ID == ctx.slotID {
				projected[i].Location = ctx.candLoc
				projected[i].DateTimeFrom = ToDateTime(projected[i].DateTimeFrom, ctx.candFrom)
				projected[i].DateTimeTo = ToDateTime(projected[i].DateTimeTo, ctx.candTo)
				break
			}
		}
	}

	e.board = Rebuild(projected, e.hours)
	if sv := e.board.Find(liveID); sv != nil {
		sv.Live = true
	}
	e.applyTransient(e.board)
}

// applyTransient re-marks the invalid flash on a freshly built board.
// At most one slot carries the flag.
func (e *Engine) applyTransient(b *Board) {
	if e.flashID == "" {
		return
	}
	if sv := b.Find(e.flashID); sv != nil {
		sv.Invalid = true
	}
}

func (e *Engine) slotByID(id string) (Slot, bool) {
	for _, s := range e.committed {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

func (e *Engine) locateRow(p Pointer) (string, Rect, bool) {
	if e.locator == nil {
		return "", Rect{}, false
	}
	return e.locator.RowAt(p.X, p.Y)
}
