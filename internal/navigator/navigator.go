package navigator

import (
	"log"

	"bufcycle/internal/domain"
	"bufcycle/internal/eventbus"
)

// BufferQuery is the read side of the host's buffer table. Results reflect
// host state at call time; nothing is cached here.
type BufferQuery interface {
	Exists(id domain.BufferID) bool
	IsLoaded(id domain.BufferID) bool
	IsListed(id domain.BufferID) bool
	Filetype(id domain.BufferID) string
	CurrentBufferID() domain.BufferID
	HighestBufferID() domain.BufferID
}

// BufferActivator is the write side of the host's buffer table
type BufferActivator interface {
	// Activate makes id the current buffer; fails if id does not exist.
	Activate(id domain.BufferID) error
	// DeleteBuffer removes id from the table; the host may refuse, e.g.
	// for buffers with unsaved changes.
	DeleteBuffer(id domain.BufferID) error
}

// Direction is the scan direction for buffer cycling
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Navigator selects the next eligible buffer for a navigation command and
// instructs the host to activate it. It keeps no state between calls.
type Navigator struct {
	query     BufferQuery
	activator BufferActivator
	skip      map[string]struct{}
	bus       eventbus.EventBus
}

// New creates a navigator over the given host interfaces. skipFiletypes
// extends nothing: it fully replaces the exclusion set, so pass
// domain.DefaultSkipFiletypes() (plus any extras) for stock behavior.
// bus may be nil when no one cares about navigation events.
func New(query BufferQuery, activator BufferActivator, skipFiletypes []string, bus eventbus.EventBus) *Navigator {
	if skipFiletypes == nil {
		skipFiletypes = domain.DefaultSkipFiletypes()
	}
	skip := make(map[string]struct{}, len(skipFiletypes))
	for _, ft := range skipFiletypes {
		skip[ft] = struct{}{}
	}
	return &Navigator{
		query:     query,
		activator: activator,
		skip:      skip,
		bus:       bus,
	}
}

// Next activates the next selectable buffer in the given direction,
// wrapping around the ends of the buffer table. Help buffers and normal
// buffers cycle in separate classes: the scan stays in the class of the
// buffer it started from. No-op when the current buffer is a plugin window
// or when no selectable buffer exists.
func (n *Navigator) Next(dir Direction) {
	current, ok := n.origin()
	if !ok {
		return
	}
	wantHelp := n.query.Filetype(current) == domain.FiletypeHelp
	if id, found := n.scan(current, dir, wantHelp); found {
		n.activate(id, current)
	}
}

// First activates the lowest-numbered selectable buffer in the current
// buffer's class. Single pass, no wraparound.
func (n *Navigator) First() {
	current, ok := n.origin()
	if !ok {
		return
	}
	wantHelp := n.query.Filetype(current) == domain.FiletypeHelp
	last := n.query.HighestBufferID()
	for id := domain.BufferID(1); id <= last; id++ {
		if n.isSelectable(id, wantHelp) {
			n.activate(id, current)
			return
		}
	}
}

// Last is symmetric to First, scanning from the highest id down.
func (n *Navigator) Last() {
	current, ok := n.origin()
	if !ok {
		return
	}
	wantHelp := n.query.Filetype(current) == domain.FiletypeHelp
	for id := n.query.HighestBufferID(); id >= 1; id-- {
		if n.isSelectable(id, wantHelp) {
			n.activate(id, current)
			return
		}
	}
}

// Close finds a replacement for the current buffer, activates it, and only
// then deletes the original. The replacement scan runs backward when
// current > 1, forward otherwise. Refuses to close the last eligible
// buffer, and never deletes a buffer it could not first replace.
func (n *Navigator) Close() {
	current, ok := n.origin()
	if !ok {
		return
	}
	dir := Forward
	if current > 1 {
		dir = Backward
	}
	wantHelp := n.query.Filetype(current) == domain.FiletypeHelp
	replacement, found := n.scan(current, dir, wantHelp)
	if !found || replacement == current {
		// Nothing else to show; keep the buffer.
		return
	}
	if err := n.activator.Activate(replacement); err != nil {
		// The deletion must not happen without a replacement in place.
		log.Printf("navigator: activate %d failed, keeping buffer %d: %v", replacement, current, err)
		n.publish(domain.ErrorEvent{Message: "activate failed", Err: err})
		return
	}
	n.publish(domain.BufferActivatedEvent{ID: replacement, Previous: current})
	if err := n.activator.DeleteBuffer(current); err != nil {
		log.Printf("navigator: delete %d refused by host: %v", current, err)
		n.publish(domain.ErrorEvent{Message: "delete refused", Err: err})
		return
	}
	n.publish(domain.BufferClosedEvent{ID: current, ReplacedBy: replacement})
}

// origin returns the current buffer id when it may initiate navigation
func (n *Navigator) origin() (domain.BufferID, bool) {
	current := n.query.CurrentBufferID()
	if current == domain.NoBuffer {
		return domain.NoBuffer, false
	}
	if _, skip := n.skip[n.query.Filetype(current)]; skip {
		n.publish(domain.NavigationBlockedEvent{Current: current, Reason: "plugin window"})
		return domain.NoBuffer, false
	}
	return current, true
}

// isSelectable reports whether id is a valid navigation target for the
// class selected by wantHelp.
func (n *Navigator) isSelectable(id domain.BufferID, wantHelp bool) bool {
	if id == domain.NoBuffer {
		return false
	}
	if !n.query.Exists(id) || !n.query.IsLoaded(id) || !n.query.IsListed(id) {
		return false
	}
	ft := n.query.Filetype(id)
	if (ft == domain.FiletypeHelp) != wantHelp {
		return false
	}
	if _, skip := n.skip[ft]; skip {
		return false
	}
	return true
}

// scan steps from start by dir, wrapping at the table edges, and returns
// the first selectable id. Once the scan has wrapped it stops as soon as
// the position crosses back past the starting point in the scan direction,
// which bounds the walk at 2*last probes even when nothing is selectable.
// The comparisons are deliberately non-strict: when start is itself the
// wrap target the scan may stop one step early, and when start is the only
// selectable buffer it is reselected, a benign no-op activation.
func (n *Navigator) scan(start domain.BufferID, dir Direction, wantHelp bool) (domain.BufferID, bool) {
	last := n.query.HighestBufferID()
	if last < 1 {
		return domain.NoBuffer, false
	}
	incr := domain.BufferID(dir)
	candidate := start
	overflow := false
	for {
		candidate += incr
		if candidate < 1 {
			candidate = last
			overflow = true
		} else if candidate > last {
			candidate = 1
			overflow = true
		}
		if n.isSelectable(candidate, wantHelp) {
			return candidate, true
		}
		if overflow && ((incr > 0 && start <= candidate) || (incr < 0 && candidate <= start)) {
			return domain.NoBuffer, false
		}
	}
}

func (n *Navigator) activate(id, previous domain.BufferID) {
	if err := n.activator.Activate(id); err != nil {
		log.Printf("navigator: activate %d failed: %v", id, err)
		n.publish(domain.ErrorEvent{Message: "activate failed", Err: err})
		return
	}
	n.publish(domain.BufferActivatedEvent{ID: id, Previous: previous})
}

func (n *Navigator) publish(event domain.DomainEvent) {
	if n.bus != nil {
		n.bus.Publish(event)
	}
}
