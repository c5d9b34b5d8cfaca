package modules

import (
	"testing"

	"github.com/cwbudde/algo-rack/dsp/core"
	"github.com/cwbudde/algo-rack/dsp/noise"
	"github.com/cwbudde/algo-rack/rack"
)

const testSampleRate = 48000.0

// constField evaluates to the same value everywhere.
type constField float64

func (c constField) Eval(_, _ float64) float64 { return float64(c) }

func constNoise(v float64) noise.Factory {
	return func(int) noise.Field { return constField(v) }
}

func testArgs(frame int64) rack.ProcessArgs {
	return rack.ProcessArgs{
		SampleRate: testSampleRate,
		SampleTime: 1 / testSampleRate,
		Frame:      frame,
	}
}

func newTestRack(t *testing.T, order rack.Order, modules ...rack.Module) *rack.Rack {
	t.Helper()

	r := rack.New([]core.ProcessorOption{core.WithSampleRate(testSampleRate)}, rack.WithOrder(order))
	for _, m := range modules {
		if err := r.Add(m); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	return r
}

// clockRack drives seed's clock input with one-sample pulses every period
// samples and steps the rack n times.
func clockRack(r *rack.Rack, seed *Seed, period, n int) {
	for i := 0; i < n; i++ {
		if i%period == 0 {
			seed.Inputs.Clock = gateHigh
		} else {
			seed.Inputs.Clock = 0
		}
		r.Step()
	}
	seed.Inputs.Clock = 0
}

func mustSeed(t *testing.T, opts ...Option) *Seed {
	t.Helper()

	s, err := NewSeed(opts...)
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}

	return s
}

func mustRandomWalk(t *testing.T, opts ...Option) *RandomWalk {
	t.Helper()

	w, err := NewRandomWalk(opts...)
	if err != nil {
		t.Fatalf("NewRandomWalk: %v", err)
	}

	return w
}

func mustTrigger(t *testing.T, opts ...Option) *Trigger {
	t.Helper()

	tr, err := NewTrigger(opts...)
	if err != nil {
		t.Fatalf("NewTrigger: %v", err)
	}

	return tr
}

func mustPhoenix(t *testing.T, opts ...Option) *Phoenix {
	t.Helper()

	p, err := NewPhoenix(opts...)
	if err != nil {
		t.Fatalf("NewPhoenix: %v", err)
	}

	return p
}
