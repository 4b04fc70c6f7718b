package audit

// Entry is one line in the hash-chained JSONL decision log.
// All fields are scalar (no map[string]any) to guarantee deterministic
// json.Marshal field order for reproducible hashing.
type Entry struct {
	Timestamp string `json:"ts"`
	SessionID string `json:"session_id,omitempty"`
	Kind      string `json:"kind"`
	Target    string `json:"target,omitempty"`
	Category  string `json:"category,omitempty"`
	Outcome   string `json:"outcome"`
	Reason    string `json:"reason,omitempty"`
	RulesHash string `json:"rules_hash,omitempty"`
	PrevHash  string `json:"prev_hash"`
}
