// Package hook adapts the host's pre-tool-use event protocol to gate
// requests: a JSON action descriptor on stdin, a decision on stdout,
// remediation on stderr, and the verdict in the process exit code.
package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppiankov/skillgate/internal/model"
)

// Exit codes at the invocation boundary. Deny is distinguished from
// generic failure so the host can tell "blocked by policy" from
// "hook broke".
const (
	ExitAllow  = 0
	ExitFailed = 1
	ExitDeny   = 2
	ExitUsage  = 64 // EX_USAGE: malformed event on stdin
	ExitConfig = 78 // EX_CONFIG: malformed ruleset
)

// maxEventSize bounds the stdin event payload.
const maxEventSize = 8 * 1024 * 1024

// Event is the pre-tool-use descriptor the host writes to stdin.
type Event struct {
	SessionID      string         `json:"session_id"`
	TranscriptPath string         `json:"transcript_path"`
	HookEventName  string         `json:"hook_event_name"`
	ToolName       string         `json:"tool_name"`
	ToolInput      map[string]any `json:"tool_input"`
}

// fileEditTools are the host tools that modify files.
var fileEditTools = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

// ackTool is the host tool whose invocation is itself the
// acknowledgment event.
const ackTool = "Skill"

// ParseEvent decodes one event from r. A malformed payload is a caller
// error (ExitUsage), never a panic.
func ParseEvent(r io.Reader) (*Event, error) {
	dec := json.NewDecoder(io.LimitReader(r, maxEventSize))
	var ev Event
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("hook: decode event: %w", err)
	}
	if ev.ToolName == "" {
		return nil, fmt.Errorf("hook: event missing tool_name")
	}
	return &ev, nil
}

// Request maps the host event to a gate request.
func (ev *Event) Request() model.ActionRequest {
	req := model.ActionRequest{
		Kind:      model.KindOther,
		Tool:      ev.ToolName,
		SessionID: ev.SessionID,
	}

	switch {
	case ev.ToolName == ackTool:
		req.Kind = model.KindAck
		req.AckName = ev.inputString("skill")
		if req.AckName == "" {
			req.AckName = ev.inputString("name")
		}
	case fileEditTools[ev.ToolName]:
		req.Kind = model.KindFileEdit
		req.TargetPath = ev.inputString("file_path")
		if req.TargetPath == "" {
			req.TargetPath = ev.inputString("notebook_path")
		}
	}

	return req
}

func (ev *Event) inputString(key string) string {
	if ev.ToolInput == nil {
		return ""
	}
	s, _ := ev.ToolInput[key].(string)
	return s
}

// WriteDecision emits the machine-readable decision on w.
func WriteDecision(w io.Writer, d model.Decision) {
	out, err := json.Marshal(d)
	if err != nil {
		return
	}
	fmt.Fprintln(w, string(out))
}
