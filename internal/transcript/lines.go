package transcript

// Lines is an in-memory acknowledgment source over raw transcript
// lines. Scenario fixtures and tests use it in place of a file-backed
// Reader; matching semantics are identical.
type Lines []string

// HasAck reports whether any line carries an acknowledgment marker for
// the named skill.
func (ls Lines) HasAck(name string) bool {
	if name == "" {
		return false
	}
	for _, l := range ls {
		if containsAck([]byte(l), name) {
			return true
		}
	}
	return false
}
