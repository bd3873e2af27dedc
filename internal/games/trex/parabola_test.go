package trex

import "testing"

func TestParabolaEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		peak, duration int
	}{
		{"standing jump", 25, 22},
		{"crouched jump", 6, 8},
		{"unit duration", 10, 1},
		{"tall slow arc", 100, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParabola(tc.peak, tc.duration)

			if p.Value() != 0 {
				t.Errorf("value at t=0 is %d, expected 0", p.Value())
			}
			if p.Finished() && tc.duration > 0 {
				t.Error("fresh parabola should not be finished")
			}

			for i := 0; i < tc.duration; i++ {
				p.Step()
				if p.Value() < 0 {
					t.Fatalf("value went negative (%d) at t=%d", p.Value(), i+1)
				}
			}

			if !p.Finished() {
				t.Error("parabola should be finished at t=duration")
			}
			if p.Value() != 0 {
				t.Errorf("value at t=duration is %d, expected 0", p.Value())
			}

			// Stepping past the end stays at zero.
			p.Step()
			if p.Value() != 0 || !p.Finished() {
				t.Error("parabola must stay finished at zero past its duration")
			}
		})
	}
}

func TestParabolaPeaksAtMidpoint(t *testing.T) {
	p := NewParabola(25, 22)

	maxValue, maxTime := 0, 0
	for i := 1; i <= 22; i++ {
		p.Step()
		if p.Value() > maxValue {
			maxValue, maxTime = p.Value(), i
		}
	}

	if maxTime != 11 {
		t.Errorf("peak reached at t=%d, expected midpoint 11", maxTime)
	}
	// Integer flooring may land just under the configured peak.
	if maxValue < 24 || maxValue > 25 {
		t.Errorf("peak value %d, expected ~25", maxValue)
	}
}

func TestParabolaSymmetry(t *testing.T) {
	p := NewParabola(30, 20)

	values := make([]int, 21)
	for i := 1; i <= 20; i++ {
		p.Step()
		values[i] = p.Value()
	}

	for i := 0; i <= 20; i++ {
		if values[i] != values[20-i] {
			t.Errorf("value(%d)=%d != value(%d)=%d, arc should be symmetric", i, values[i], 20-i, values[20-i])
		}
	}
}

func TestParabolaRejectsNonPositiveDuration(t *testing.T) {
	for _, duration := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewParabola(10, %d) should panic", duration)
				}
			}()
			NewParabola(10, duration)
		}()
	}
}
