package modules

import (
	"testing"

	"github.com/cwbudde/algo-rack/internal/testutil"
	"github.com/cwbudde/algo-rack/rack"
)

// runTrigger clocks a Seed → Trigger rack with clocks clock pulses spaced
// far enough apart for every output pulse to end, and returns Out.
func runTrigger(t *testing.T, tr *Trigger, clocks int) []float64 {
	t.Helper()

	const period = 100

	s := mustSeed(t)
	r := newTestRack(t, rack.LeftToRight, s, tr)
	r.Run(2)

	out := make([]float64, 0, clocks*period)
	for i := 0; i < clocks*period; i++ {
		s.Inputs.Clock = 0
		if i%period == 0 {
			s.Inputs.Clock = gateHigh
		}
		r.Step()
		out = append(out, tr.Outputs.Out)
	}

	return out
}

func TestTriggerDefaults(t *testing.T) {
	tr := mustTrigger(t)

	if tr.Density() != 0 {
		t.Fatalf("Density() = %v, want 0", tr.Density())
	}
	if tr.Division() != Divisions[0] {
		t.Fatalf("Division() = %d, want %d", tr.Division(), Divisions[0])
	}
	if tr.Light() != LightOff {
		t.Fatalf("Light() = %v, want off", tr.Light())
	}
	if len(Divisions) != len(DivisionLabels) {
		t.Fatal("division labels out of sync")
	}
}

func TestTriggerSettersClamp(t *testing.T) {
	tr := mustTrigger(t)

	tr.SetDensity(150)
	if tr.Density() != maxDensity {
		t.Fatalf("Density() = %v, want %v", tr.Density(), maxDensity)
	}

	tr.SetDivision(-3)
	tr.Process(testArgs(0))
	if tr.Division() != Divisions[0] {
		t.Fatalf("Division() = %d, want %d", tr.Division(), Divisions[0])
	}

	tr.SetDivision(99)
	tr.Process(testArgs(1))
	if tr.Division() != Divisions[len(Divisions)-1] {
		t.Fatalf("Division() = %d, want %d", tr.Division(), Divisions[len(Divisions)-1])
	}
}

func TestTriggerDensity(t *testing.T) {
	// A constant field of 0 rescales to a threshold of 50 %.
	tests := []struct {
		name    string
		density float64
		pulses  int
		light   LightColor
	}{
		{"always", 100, 2, LightYellow},
		{"at threshold", 50, 2, LightYellow},
		{"below threshold", 49.9, 0, LightOff},
		{"never", 0, 0, LightOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustTrigger(t, WithNoise(constNoise(0)))
			tr.SetDensity(tt.density)
			tr.SetDivision(10) // 4 ticks

			out := runTrigger(t, tr, 8)
			if got := testutil.RisingEdges(out, 1); got != tt.pulses {
				t.Fatalf("pulses = %d, want %d", got, tt.pulses)
			}
			if tr.Light() != tt.light {
				t.Fatalf("Light() = %v, want %v", tr.Light(), tt.light)
			}
		})
	}
}

func TestTriggerPulseShape(t *testing.T) {
	tr := mustTrigger(t, WithNoise(constNoise(-1)))
	tr.SetDensity(100)
	tr.SetDivision(3) // 24 ticks

	out := runTrigger(t, tr, 24)

	high := 0
	for _, v := range out {
		if v == gateHigh {
			high++
		} else if v != 0 {
			t.Fatalf("output %v is neither 0 nor %v", v, gateHigh)
		}
	}
	// 1 ms at 48 kHz, allowing for accumulated rounding.
	if high < 48 || high > 49 {
		t.Fatalf("pulse length = %d samples, want 48", high)
	}
}

func TestTriggerBlock(t *testing.T) {
	tr := mustTrigger(t, WithNoise(constNoise(0)))
	tr.SetDensity(100)
	tr.SetDivision(10)
	tr.Inputs.Block = 5

	out := runTrigger(t, tr, 8)
	if testutil.RisingEdges(out, 1) != 0 {
		t.Fatal("blocked trigger produced pulses")
	}
	if tr.Light() != LightRed {
		t.Fatalf("Light() = %v, want red", tr.Light())
	}
}

func TestTriggerLatchesAtPhaseZero(t *testing.T) {
	tr := mustTrigger(t, WithNoise(constNoise(0)))
	tr.SetDivision(10)
	tr.SetVariant(4)

	runTrigger(t, tr, 2)
	if tr.Phase() != 2 {
		t.Fatalf("Phase() = %d, want 2", tr.Phase())
	}

	tr.SetDivision(0)
	tr.SetVariant(9)
	tr.Process(testArgs(0))
	if tr.Division() != 4 || tr.Variant() != 4 {
		t.Fatalf("mid-phase latch: division=%d variant=%v, want 4 and 4", tr.Division(), tr.Variant())
	}

	tr.Inputs.Reset = gateHigh
	tr.Process(testArgs(1))
	if tr.Phase() != 0 || tr.Division() != Divisions[0] || tr.Variant() != 9 {
		t.Fatalf("after reset phase=%d division=%d variant=%v", tr.Phase(), tr.Division(), tr.Variant())
	}
}

func TestTriggerResetCancelsPulse(t *testing.T) {
	tr := mustTrigger(t, WithNoise(constNoise(0)))
	tr.SetDensity(100)
	tr.SetDivision(10)
	runTrigger(t, tr, 4)

	tr.Reset()
	tr.Process(testArgs(0))

	if tr.Outputs.Out != 0 || tr.Phase() != 0 || tr.Light() != LightOff {
		t.Fatalf("Reset left out=%v phase=%d light=%v", tr.Outputs.Out, tr.Phase(), tr.Light())
	}
}

func TestLightColorString(t *testing.T) {
	for c, want := range map[LightColor]string{LightOff: "off", LightYellow: "yellow", LightRed: "red"} {
		if c.String() != want {
			t.Fatalf("String() = %q, want %q", c.String(), want)
		}
	}
}
