package modules

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-rack/rack"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	want := []string{ModelPhoenix, ModelRandomWalk, ModelSeed, ModelTrigger}
	if got := reg.Models(); !slices.Equal(got, want) {
		t.Fatalf("Models() = %v, want %v", got, want)
	}

	tests := []struct {
		model string
		check func(rack.Module) bool
	}{
		{ModelPhoenix, func(m rack.Module) bool { _, ok := m.(*Phoenix); return ok }},
		{ModelSeed, func(m rack.Module) bool { _, ok := m.(*Seed); return ok }},
		{ModelRandomWalk, func(m rack.Module) bool { _, ok := m.(*RandomWalk); return ok }},
		{ModelTrigger, func(m rack.Module) bool { _, ok := m.(*Trigger); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			m, err := reg.New(tt.model)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.model, err)
			}
			if !tt.check(m) {
				t.Fatalf("New(%q) built %T", tt.model, m)
			}
		})
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	reg := rack.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(reg); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegisterPassesOptions(t *testing.T) {
	reg := rack.NewRegistry()
	if err := Register(reg, WithButtons(0)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := reg.New(ModelSeed); err == nil {
		t.Fatal("expected option error from factory")
	}

	if _, err := reg.New("Matrix"); !errors.Is(err, rack.ErrUnknownModel) {
		t.Fatalf("err = %v, want ErrUnknownModel", err)
	}
}
