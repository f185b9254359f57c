package berplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/berplot"
	"gonum.org/v1/plot/vg"
)

func TestSink_ObserveAccumulates(t *testing.T) {
	t.Parallel()

	sink := berplot.NewSink()
	sink.Observe(0, []int{1, 0, 1, 0}, []float64{2, -2, 1, -1})
	sink.Observe(1, []int{0, 0, 0, 0}, []float64{3, -3, 3, -3})

	samples := sink.Samples()
	require.Len(t, samples, 2)
	require.Equal(t, 0, samples[0].Iteration)
	require.Equal(t, 2, samples[0].EstimateWeight)
	require.InDelta(t, 1.5, samples[0].MeanAbsLLR, 1e-9)
	require.Equal(t, 1, samples[1].Iteration)
	require.Equal(t, 0, samples[1].EstimateWeight)
	require.InDelta(t, 3.0, samples[1].MeanAbsLLR, 1e-9)
}

func TestSink_WritePNG_RequiresSamples(t *testing.T) {
	t.Parallel()

	sink := berplot.NewSink()
	err := sink.WritePNG(filepath.Join(t.TempDir(), "trace.png"), 4*vg.Inch, 4*vg.Inch)
	require.Error(t, err)
}

func TestSink_WritePNG_WritesFile(t *testing.T) {
	t.Parallel()

	sink := berplot.NewSink()
	sink.Observe(0, []int{1, 1, 0}, []float64{1.5, -0.5, 0.2})
	sink.Observe(1, []int{0, 0, 0}, []float64{2.5, -1.5, 1.2})

	path := filepath.Join(t.TempDir(), "trace.png")
	require.NoError(t, sink.WritePNG(path, 4*vg.Inch, 3*vg.Inch))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
