package motion

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Property is an animatable visual property.
type Property int

const (
	Opacity Property = iota // 0 (invisible) to 1
	X                       // horizontal offset in px
	Y                       // vertical offset in px
	Scale                   // 1 is natural size
	Rotate                  // degrees
	Shadow                  // elevation, 0 (flat) to 1

	numProperties
)

// Properties lists every property in index order.
var Properties = []Property{Opacity, X, Y, Scale, Rotate, Shadow}

// String returns the property name used in config and debug output.
func (p Property) String() string {
	switch p {
	case Opacity:
		return "opacity"
	case X:
		return "x"
	case Y:
		return "y"
	case Scale:
		return "scale"
	case Rotate:
		return "rotate"
	case Shadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// Values is a full snapshot of an element's animatable properties.
type Values [numProperties]float64

// Identity returns the resting appearance: fully opaque, natural size, no offset.
func Identity() Values {
	var v Values
	v[Opacity] = 1
	v[Scale] = 1
	return v
}

// Apply returns a copy of v with every property named in p overwritten.
func (v Values) Apply(p Patch) Values {
	for prop, val := range p {
		if prop >= 0 && prop < numProperties {
			v[prop] = val
		}
	}
	return v
}

// Lerp interpolates from v toward to; t=0 is v and t=1 is to.
func (v Values) Lerp(to Values, t float64) Values {
	var out Values
	for i := range v {
		out[i] = v[i] + (to[i]-v[i])*t
	}
	return out
}

// Near reports whether every property is within eps of other.
func (v Values) Near(other Values, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

func (v Values) String() string {
	parts := make([]string, 0, numProperties)
	for _, p := range Properties {
		parts = append(parts, fmt.Sprintf("%s=%.3f", p, v[p]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Patch is a partial target: only the named properties change.
type Patch map[Property]float64

// Merge returns a new patch with the entries of other layered over p.
func (p Patch) Merge(other Patch) Patch {
	out := make(Patch, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func (p Patch) String() string {
	keys := make([]Property, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%g", k, p[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
