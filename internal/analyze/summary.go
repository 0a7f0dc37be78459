package analyze

import "hwmedic/internal/probe"

// Summary counts results by exact status over one run.
type Summary struct {
	Total    int     `json:"total_probes"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Warnings int     `json:"warnings"`
	PassRate float64 `json:"pass_rate"`
}

// Summarize tallies the result collection. PassRate is 100*passed/total
// rounded to 1 decimal, 0 when the collection is empty.
func Summarize(results *probe.Results) Summary {
	s := Summary{Total: results.Len()}

	for _, name := range results.Names() {
		r, ok := results.Get(name)
		if !ok {
			continue
		}
		switch r.Status {
		case probe.StatusPass:
			s.Passed++
		case probe.StatusFail:
			s.Failed++
		case probe.StatusWarning:
			s.Warnings++
		}
	}

	if s.Total > 0 {
		s.PassRate = round1(float64(s.Passed) / float64(s.Total) * 100)
	}
	return s
}
