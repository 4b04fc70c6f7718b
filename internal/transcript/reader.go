// Package transcript reads the host-owned session transcript to answer
// whether an acknowledgment event has occurred. The transcript is an
// append-only JSONL file created and extended by the host; this package
// never writes to it.
package transcript

import (
	"bufio"
	"os"
)

// maxLineSize bounds transcript line scanning. Host transcripts embed
// full tool results, so lines can be large.
const maxLineSize = 4 * 1024 * 1024

// Reader answers acknowledgment lookups against a transcript file.
// Every lookup re-reads the file: a decision depends only on the
// transcript contents at call time.
type Reader struct {
	path string
}

// NewReader creates a reader for the transcript at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the transcript location.
func (r *Reader) Path() string {
	return r.path
}

// HasAck reports whether an acknowledgment for the named skill appears
// anywhere in the transcript. A missing or unreadable transcript is not
// evidence of acknowledgment: the answer is false, never an error.
func (r *Reader) HasAck(name string) bool {
	if r == nil || r.path == "" || name == "" {
		return false
	}

	f, err := os.Open(r.path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		if containsAck(scanner.Bytes(), name) {
			return true
		}
	}
	// Scan errors (oversized or truncated lines) fail closed.
	return false
}

// Acks returns which of the known skill names have acknowledgments in
// the transcript. Used by doctor/status surfaces.
func (r *Reader) Acks(known []string) []string {
	var found []string
	for _, name := range known {
		if r.HasAck(name) {
			found = append(found, name)
		}
	}
	return found
}

// containsAck scans one transcript line for a skill-invocation marker.
// Both compact (`"skill":"name"`) and pretty (`"skill": "name"`) JSON
// encodings are equivalent: matching tolerates spaces and tabs around
// the separator instead of comparing one literal form.
func containsAck(line []byte, name string) bool {
	const key = `"skill"`

	for i := 0; i+len(key) <= len(line); i++ {
		if string(line[i:i+len(key)]) != key {
			continue
		}
		j := i + len(key)
		j = skipSpace(line, j)
		if j >= len(line) || line[j] != ':' {
			continue
		}
		j = skipSpace(line, j+1)
		want := `"` + name + `"`
		if j+len(want) <= len(line) && string(line[j:j+len(want)]) == want {
			return true
		}
	}
	return false
}

func skipSpace(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
