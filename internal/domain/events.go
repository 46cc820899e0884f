package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBufferOpened      EventType = "BufferOpened"
	EventBufferActivated   EventType = "BufferActivated"
	EventBufferClosed      EventType = "BufferClosed"
	EventNavigationBlocked EventType = "NavigationBlocked"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BufferOpenedEvent is emitted when a new buffer enters the table
type BufferOpenedEvent struct {
	Buffer Buffer
}

func (e BufferOpenedEvent) Type() EventType { return EventBufferOpened }

// BufferActivatedEvent is emitted when a buffer becomes the current one
type BufferActivatedEvent struct {
	ID       BufferID
	Previous BufferID
}

func (e BufferActivatedEvent) Type() EventType { return EventBufferActivated }

// BufferClosedEvent is emitted when a buffer is removed from the table
type BufferClosedEvent struct {
	ID         BufferID
	ReplacedBy BufferID // buffer activated in its place
}

func (e BufferClosedEvent) Type() EventType { return EventBufferClosed }

// NavigationBlockedEvent is emitted when a navigation command refuses to run,
// e.g. because the current buffer is a plugin-owned window
type NavigationBlockedEvent struct {
	Current BufferID
	Reason  string
}

func (e NavigationBlockedEvent) Type() EventType { return EventNavigationBlocked }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	SkipFiletypes []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
