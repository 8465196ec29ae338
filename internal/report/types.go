package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta    Meta         `json:"meta"`
	Suite   SuiteInfo    `json:"suite"`
	Cases   []CaseResult `json:"cases"`
	Summary Summary      `json:"summary"`
}

type Meta struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	GoVersion string        `json:"go_version"`
	OS        string        `json:"os"`
	Arch      string        `json:"arch"`
}

type SuiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

type CaseResult struct {
	ID         string        `json:"id"`
	Expression string        `json:"expression"`
	Passed     bool          `json:"passed"`
	Want       string        `json:"want"`
	Got        string        `json:"got"`
	Message    string        `json:"message,omitempty"`
	Duration   time.Duration `json:"duration"`
}

type Summary struct {
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Latency LatencyStats `json:"latency"`
}

func NewMeta(startedAt time.Time) Meta {
	return Meta{
		StartedAt: startedAt,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Add appends a case result and keeps the pass/fail counters in step.
func (r *Report) Add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	r.Summary.Total++
	if c.Passed {
		r.Summary.Passed++
	} else {
		r.Summary.Failed++
	}
}

// Finish stamps the total duration and computes latency statistics.
func (r *Report) Finish(end time.Time) {
	r.Meta.Duration = end.Sub(r.Meta.StartedAt)

	durations := make([]time.Duration, 0, len(r.Cases))
	for _, c := range r.Cases {
		durations = append(durations, c.Duration)
	}
	r.Summary.Latency = ComputeLatencyStats(durations)
}

func (r *Report) OK() bool {
	return r.Summary.Failed == 0
}

func (r *Report) Failures() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}
