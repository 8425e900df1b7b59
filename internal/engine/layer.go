package engine

import "strings"

// Layer is a semantic membership bit used by pointer queries.
type Layer uint8

const (
	LayerSurface Layer = 1 << iota // globe body
	LayerTarget                    // capturable target
	LayerEffect                    // decorative only, never interactive
)

// LayerSet holds every layer an object belongs to. Objects normally belong
// to exactly one interactive layer; the set form keeps the door open.
type LayerSet uint8

// Layers builds a set from individual layers.
func Layers(layers ...Layer) LayerSet {
	var s LayerSet
	for _, l := range layers {
		s |= LayerSet(l)
	}
	return s
}

func (s LayerSet) Has(l Layer) bool {
	return s&LayerSet(l) != 0
}

func (s LayerSet) With(l Layer) LayerSet {
	return s | LayerSet(l)
}

func (s LayerSet) Empty() bool {
	return s == 0
}

func (s LayerSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	if s.Has(LayerSurface) {
		names = append(names, "surface")
	}
	if s.Has(LayerTarget) {
		names = append(names, "target")
	}
	if s.Has(LayerEffect) {
		names = append(names, "effect")
	}
	return strings.Join(names, "|")
}

// ParseLayer maps a scene file name onto a layer.
func ParseLayer(name string) (Layer, bool) {
	switch strings.ToLower(name) {
	case "surface":
		return LayerSurface, true
	case "target":
		return LayerTarget, true
	case "effect":
		return LayerEffect, true
	}
	return 0, false
}

// Layered is implemented by anything that can report its layer membership.
type Layered interface {
	Layers() LayerSet
}
