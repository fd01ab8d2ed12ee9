package types

// StreamAction identifies the kind of a stream event
type StreamAction string

const (
	// ActionChunk carries a piece of the recipe text; more events follow.
	ActionChunk StreamAction = "chunk"
	// ActionClose is the terminal event. It may carry the last chunk or an error.
	ActionClose StreamAction = "close"
)

// StreamEvent is a single server-sent event delivered to the client
type StreamEvent struct {
	Action StreamAction `json:"action"`
	Chunk  string       `json:"chunk,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// IsTerminal reports whether no further events follow e.
func (e StreamEvent) IsTerminal() bool {
	return e.Action == ActionClose
}

// ChunkEvent builds a non-terminal event carrying text.
func ChunkEvent(chunk string) StreamEvent {
	return StreamEvent{Action: ActionChunk, Chunk: chunk}
}

// CloseEvent builds the terminal event carrying the last chunk.
func CloseEvent(chunk string) StreamEvent {
	return StreamEvent{Action: ActionClose, Chunk: chunk}
}

// ErrorEvent builds the terminal event carrying an error message.
func ErrorEvent(message string) StreamEvent {
	return StreamEvent{Action: ActionClose, Error: message}
}
