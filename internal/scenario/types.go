package scenario

// Action defines the request under test.
type Action struct {
	Kind string `yaml:"kind,omitempty"` // file_edit | ack | other; inferred when empty
	Path string `yaml:"path,omitempty"`
	Ack  string `yaml:"ack,omitempty"`
	Tool string `yaml:"tool,omitempty"`
}

// Case is one test case within a scenario.
type Case struct {
	Action Action `yaml:"action"`
	Expect string `yaml:"expect"` // allow | deny
	// Category, when set, must equal the category the gate reports.
	Category string `yaml:"category,omitempty"`
}

// Scenario is a named collection of gate test cases.
type Scenario struct {
	Name string `yaml:"name"`
	// RulesFile overrides the ruleset for this scenario.
	RulesFile string `yaml:"rules_file,omitempty"`
	// Transcript holds raw transcript fixture lines the cases run
	// against. Empty means no acknowledgments have occurred.
	Transcript []string `yaml:"transcript,omitempty"`
	Cases      []Case   `yaml:"cases"`
}

// CaseResult is the outcome of evaluating one test case.
type CaseResult struct {
	Index    int    `json:"index"`
	Passed   bool   `json:"passed"`
	Path     string `json:"path,omitempty"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Category string `json:"category,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// RunResult is the outcome of running all cases in one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
