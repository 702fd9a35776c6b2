package makima

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sampleOptions specifies settings for writeSamples.
type sampleOptions struct {
	// Number of digits after the decimal point.
	Precision int
}

// writeSamples writes "x y" lines for x = lo, lo+delta, ... up to but
// excluding hi, for plotting and golden files.
func writeSamples(w io.Writer, f func(float64) float64, lo, hi, delta float64, opts sampleOptions) error {
	scale := math.Pow(10, float64(opts.Precision))
	format := func(v float64) string {
		v = math.Round(v*scale) / scale
		if v == 0 {
			// no negative zeros
			v = 0
		}
		return strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}
	n := int((hi - lo) / delta)
	var buf []byte
	for i := range n {
		x := float64(i)*delta + lo
		buf = append(buf[:0], format(x)...)
		buf = append(buf, ' ')
		buf = append(buf, format(f(x))...)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func assertGolden(t *testing.T, name string, data []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

func goldenSamples(t *testing.T, name string, f func(float64) float64, lo, hi, delta float64) {
	t.Helper()
	var buf bytes.Buffer
	if err := writeSamples(&buf, f, lo, hi, delta, sampleOptions{Precision: 6}); err != nil {
		t.Fatal(err)
	}
	assertGolden(t, name, buf.Bytes())
}
