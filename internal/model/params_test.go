package model

import "testing"

func TestControlParametersValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultControlParameters().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	mutate := func(f func(*ControlParameters)) ControlParameters {
		p := DefaultControlParameters()
		f(&p)
		return p
	}

	cases := []struct {
		name string
		p    ControlParameters
	}{
		{"start below stop", mutate(func(p *ControlParameters) { p.DTStartC = 3; p.DTStopC = 4 })},
		{"start equals stop", mutate(func(p *ControlParameters) { p.DTStartC = 4; p.DTStopC = 4 })},
		{"negative stop", mutate(func(p *ControlParameters) { p.DTStopC = -1 })},
		{"zero boil hysteresis", mutate(func(p *ControlParameters) { p.BoilHystC = 0 })},
		{"boil below cooling", mutate(func(p *ControlParameters) { p.BoilC = 100 })},
		{"zero tank mass", mutate(func(p *ControlParameters) { p.TankMassKg = 0 })},
		{"max safe below baseline", mutate(func(p *ControlParameters) { p.MaxSafeTankC = 5 })},
	}
	for _, tc := range cases {
		if err := tc.p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
