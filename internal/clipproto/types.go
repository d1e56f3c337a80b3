package clipproto

import "fmt"

// Command identifies the operation a client asks the daemon to perform.
// Ordinals are part of the wire format and must not be reordered.
type Command int32

const (
	CommandCopy Command = iota
	CommandCut
	CommandClear
	CommandGetCopy
	CommandGetCut
)

// Known reports whether the ordinal names a defined command. Unknown
// ordinals decode successfully and are answered with StatusUnknown; they
// are never a decode failure.
func (c Command) Known() bool {
	return c >= CommandCopy && c <= CommandGetCut
}

func (c Command) String() string {
	switch c {
	case CommandCopy:
		return "copy"
	case CommandCut:
		return "cut"
	case CommandClear:
		return "clear"
	case CommandGetCopy:
		return "get-copy"
	case CommandGetCut:
		return "get-cut"
	default:
		return fmt.Sprintf("command(%d)", int32(c))
	}
}

// Response status tokens. These literal strings are part of the wire format.
const (
	StatusSuccess = "success"
	StatusUnknown = "unknown"
	StatusError   = "error"
)

// Request is a single client message. For CommandCopy and CommandCut, Files
// carries the complete desired contents of the corresponding selection set
// (full replacement, never a delta). Other commands ignore Files.
type Request struct {
	Command Command
	Files   []string
}

// Response is the daemon's answer to a Request. Files is populated only for
// CommandGetCopy and CommandGetCut; its order is unspecified.
type Response struct {
	Status string
	Files  []string
}
