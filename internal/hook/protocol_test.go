package hook

import (
	"strings"
	"testing"

	"github.com/ppiankov/skillgate/internal/model"
)

func TestParseEvent(t *testing.T) {
	in := `{"session_id":"s-1","transcript_path":"/tmp/t.jsonl","hook_event_name":"PreToolUse","tool_name":"Edit","tool_input":{"file_path":"app/models/user.rb"}}`

	ev, err := ParseEvent(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ev.ToolName != "Edit" || ev.SessionID != "s-1" {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestParseEventRejectsGarbage(t *testing.T) {
	if _, err := ParseEvent(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := ParseEvent(strings.NewReader(`{"tool_input":{}}`)); err == nil {
		t.Fatal("expected missing tool_name error")
	}
}

func TestRequestMapping(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		input    map[string]any
		wantKind model.ActionKind
		wantPath string
		wantAck  string
	}{
		{"edit", "Edit", map[string]any{"file_path": "app/models/user.rb"}, model.KindFileEdit, "app/models/user.rb", ""},
		{"write", "Write", map[string]any{"file_path": "app/views/x.erb"}, model.KindFileEdit, "app/views/x.erb", ""},
		{"multiedit", "MultiEdit", map[string]any{"file_path": "a.rb"}, model.KindFileEdit, "a.rb", ""},
		{"notebook", "NotebookEdit", map[string]any{"notebook_path": "nb.ipynb"}, model.KindFileEdit, "nb.ipynb", ""},
		{"skill", "Skill", map[string]any{"skill": "rails-models"}, model.KindAck, "", "rails-models"},
		{"skill name key", "Skill", map[string]any{"name": "rails-views"}, model.KindAck, "", "rails-views"},
		{"bash out of scope", "Bash", map[string]any{"command": "ls"}, model.KindOther, "", ""},
		{"read out of scope", "Read", map[string]any{"file_path": "app/models/user.rb"}, model.KindOther, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &Event{ToolName: tt.tool, ToolInput: tt.input, SessionID: "s-1"}
			req := ev.Request()
			if req.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", req.Kind, tt.wantKind)
			}
			if req.TargetPath != tt.wantPath {
				t.Errorf("path = %q, want %q", req.TargetPath, tt.wantPath)
			}
			if req.AckName != tt.wantAck {
				t.Errorf("ack = %q, want %q", req.AckName, tt.wantAck)
			}
		})
	}
}
