package align

import "time"

func summarize(records []Record, candidates int, elapsed time.Duration) Summary {
	s := Summary{
		References: len(records),
		Candidates: candidates,
		Elapsed:    elapsed,
	}

	var total float64

	for _, r := range records {
		if r.Match == nil {
			s.Unmatched++
			continue
		}

		s.Matched++
		total += r.Similarity
	}

	s.UnusedCandidates = candidates - s.Matched

	if s.Matched > 0 {
		s.MeanSimilarity = total / float64(s.Matched)
	}

	if s.References > 0 {
		s.Coverage = float64(s.Matched) / float64(s.References)
	}

	return s
}
