package jobs

// Result is the outcome of a single job invocation, returned to the invoker
// and never persisted. Counters are aggregates only; per-item failures are
// logged, not reported.
type Result struct {
	Success      bool   `json:"success"`
	EmailsSent   int    `json:"emailsSent,omitempty"`
	EmailsFailed int    `json:"emailsFailed,omitempty"`
	Updated      int    `json:"updated,omitempty"`
	Error        string `json:"error,omitempty"`
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}
