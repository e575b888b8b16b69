package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgRemovalDue is sent once a task's removal delay has elapsed.
type MsgRemovalDue struct {
	TaskID int64
}

func (MsgRemovalDue) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
