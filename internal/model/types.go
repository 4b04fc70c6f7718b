package model

// ActionKind classifies the attempted action at the invocation boundary.
type ActionKind string

const (
	// KindFileEdit covers any tool call that writes or modifies a file.
	KindFileEdit ActionKind = "file_edit"
	// KindAck is an acknowledgment event: the caller is loading a skill,
	// which is the act of satisfying the policy rather than violating it.
	KindAck ActionKind = "ack"
	// KindOther is any action outside policy scope (reads, shell, etc.).
	KindOther ActionKind = "other"
)

// Outcome is the gate's verdict for one action.
type Outcome string

const (
	Allow Outcome = "allow"
	Deny  Outcome = "deny"
)

// ActionRequest describes one attempted action submitted to the gate.
// Transient: created per call, discarded after producing a Decision.
type ActionRequest struct {
	Kind ActionKind `json:"kind"`
	// TargetPath is the file the action would modify. Empty for
	// non-file actions, which always pass.
	TargetPath string `json:"target_path,omitempty"`
	// AckName is set only when the action itself is an acknowledgment
	// event (Kind == KindAck). Such requests are unconditionally allowed.
	AckName string `json:"ack_name,omitempty"`
	// Tool is the host-side tool name, recorded for observability only.
	Tool string `json:"tool,omitempty"`
	// SessionID identifies the host session, recorded for observability.
	SessionID string `json:"session_id,omitempty"`
}

// Decision is the gate's output for one ActionRequest.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	// Category is the policy category that matched the target path,
	// empty when no rule applied.
	Category string `json:"category,omitempty"`
	// Reason is the category that triggered denial, empty on allow.
	Reason string `json:"reason,omitempty"`
	// Remediation carries actionable instructions, present only on deny.
	Remediation string `json:"remediation,omitempty"`
}

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}
