package engine

import "testing"

func TestLayerSet(t *testing.T) {
	s := Layers(LayerTarget, LayerEffect)

	if !s.Has(LayerTarget) || !s.Has(LayerEffect) {
		t.Errorf("Expected target and effect in %s", s)
	}
	if s.Has(LayerSurface) {
		t.Errorf("Did not expect surface in %s", s)
	}

	s = s.With(LayerSurface)
	if !s.Has(LayerSurface) {
		t.Error("With should add the layer")
	}
}

func TestLayerSetString(t *testing.T) {
	tests := []struct {
		set  LayerSet
		want string
	}{
		{0, "none"},
		{Layers(LayerSurface), "surface"},
		{Layers(LayerTarget, LayerEffect), "target|effect"},
		{Layers(LayerEffect, LayerSurface, LayerTarget), "surface|target|effect"},
	}

	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseLayer(t *testing.T) {
	tests := []struct {
		name string
		want Layer
		ok   bool
	}{
		{"surface", LayerSurface, true},
		{"Target", LayerTarget, true},
		{"EFFECT", LayerEffect, true},
		{"ocean", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLayer(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLayer(%q) = %v, %v; expected %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
