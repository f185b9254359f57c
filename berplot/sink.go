package berplot

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sample is one iteration's snapshot: the hard-decision weight of the
// estimate and the mean magnitude of the posterior LLR vector.
type Sample struct {
	Iteration      int
	EstimateWeight int
	MeanAbsLLR     float64
}

// Sink implements the ldpc.Observer function signature by method value
// (Sink.Observe), buffering one Sample per call. It is safe for
// concurrent use by a single decode's callbacks; do not share a Sink
// across concurrent Decode calls.
type Sink struct {
	mu      sync.Mutex
	samples []Sample
}

// NewSink returns an empty Sink ready to be passed as
// ldpc.WithObserver(sink.Observe).
func NewSink() *Sink {
	return &Sink{}
}

// Observe records one decode iteration. Its signature matches
// ldpc.Observer exactly, so a *Sink can be wired in directly:
// ldpc.WithObserver(sink.Observe).
func (s *Sink) Observe(iteration int, estimate []int, posteriorLLR []float64) {
	weight := 0
	for _, b := range estimate {
		weight += b
	}
	var absSum float64
	for _, l := range posteriorLLR {
		absSum += math.Abs(l)
	}
	meanAbs := 0.0
	if len(posteriorLLR) > 0 {
		meanAbs = absSum / float64(len(posteriorLLR))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, Sample{
		Iteration:      iteration,
		EstimateWeight: weight,
		MeanAbsLLR:     meanAbs,
	})
}

// Samples returns a copy of the recorded trace, ordered by iteration.
func (s *Sink) Samples() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// WritePNG renders the recorded trace as a two-series plot (estimate
// weight and mean |LLR|, both against iteration) and saves it to path.
func (s *Sink) WritePNG(path string, width, height vg.Length) error {
	samples := s.Samples()
	if len(samples) == 0 {
		return fmt.Errorf("berplot: WritePNG: no samples recorded")
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("berplot: WritePNG: %w", err)
	}
	p.Title.Text = "LDPC decode trace"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "value"

	weightPts := make(plotter.XYs, len(samples))
	llrPts := make(plotter.XYs, len(samples))
	for i, smp := range samples {
		weightPts[i].X = float64(smp.Iteration)
		weightPts[i].Y = float64(smp.EstimateWeight)
		llrPts[i].X = float64(smp.Iteration)
		llrPts[i].Y = smp.MeanAbsLLR
	}

	weightLine, err := plotter.NewLine(weightPts)
	if err != nil {
		return fmt.Errorf("berplot: WritePNG: estimate-weight series: %w", err)
	}
	weightLine.LineStyle.Color = color.RGBA{0, 0, 255, 255}

	llrLine, err := plotter.NewLine(llrPts)
	if err != nil {
		return fmt.Errorf("berplot: WritePNG: mean-|LLR| series: %w", err)
	}
	llrLine.LineStyle.Color = color.RGBA{255, 0, 0, 255}

	p.Add(weightLine, llrLine)
	p.Legend.Add("estimate weight", weightLine)
	p.Legend.Add("mean |LLR|", llrLine)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("berplot: WritePNG: %w", err)
	}
	return nil
}
