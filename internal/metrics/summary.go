package metrics

import "fmt"

// AlgorithmStats aggregates the solves of one algorithm.
type AlgorithmStats struct {
	Solves      int
	MeanPath    float64
	MeanVisited float64
}

// Summary is a point-in-time digest of the collector.
type Summary struct {
	Mazes      int
	Accepted   int
	Rejected   int
	MeanSteps  float64
	Algorithms map[string]AlgorithmStats
}

// Summarize gathers the registry and folds the mazegen families into a Summary.
func (c *Collector) Summarize() (Summary, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("metrics: gather: %w", err)
	}

	s := Summary{Algorithms: map[string]AlgorithmStats{}}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				label = lp.GetValue()
			}
			switch mf.GetName() {
			case namespace + "_mazes_completed_total":
				s.Mazes = int(m.GetCounter().GetValue())
			case namespace + "_steps_total":
				if label == "accepted" {
					s.Accepted = int(m.GetCounter().GetValue())
				} else {
					s.Rejected = int(m.GetCounter().GetValue())
				}
			case namespace + "_maze_steps":
				s.MeanSteps = mean(m.GetHistogram().GetSampleSum(), m.GetHistogram().GetSampleCount())
			case namespace + "_path_cells":
				a := s.Algorithms[label]
				a.Solves = int(m.GetHistogram().GetSampleCount())
				a.MeanPath = mean(m.GetHistogram().GetSampleSum(), m.GetHistogram().GetSampleCount())
				s.Algorithms[label] = a
			case namespace + "_visited_cells":
				a := s.Algorithms[label]
				a.MeanVisited = mean(m.GetHistogram().GetSampleSum(), m.GetHistogram().GetSampleCount())
				s.Algorithms[label] = a
			}
		}
	}
	return s, nil
}

func mean(sum float64, n uint64) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
