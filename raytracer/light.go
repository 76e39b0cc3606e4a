package raytracer

import "math"

// LightKind tags which variant a Light holds.
type LightKind int

const (
	LightDirectional LightKind = iota
	LightPoint
)

// Light is a tagged union of a directional (sun-like) and a point light.
type Light struct {
	Kind LightKind

	Direction Vec3 // Directional: unit direction the light travels

	Origin Vec3 // Point: world-space position

	Color     ColorRGB
	Intensity float64
}

// NewDirectionalLight returns a directional light; direction need not be
// pre-normalized.
func NewDirectionalLight(direction Vec3, color ColorRGB, intensity float64) Light {
	return Light{Kind: LightDirectional, Direction: direction.Normalized(), Color: color, Intensity: intensity}
}

// NewPointLight returns a point light at origin.
func NewPointLight(origin Vec3, color ColorRGB, intensity float64) Light {
	return Light{Kind: LightPoint, Origin: origin, Color: color, Intensity: intensity}
}

// DirectionToLight returns the (unnormalized) vector from target toward the
// light and the distance to travel along it. For directional lights this is
// -Direction at infinite distance (shadow rays against it use TMax=+Inf);
// the original implementation returned the zero vector here, silently
// disabling shadows and attenuation for every directional light — fixed.
func (l Light) DirectionToLight(target Vec3) (direction Vec3, distance float64) {
	switch l.Kind {
	case LightDirectional:
		return l.Direction.Negate(), math.Inf(1)
	default:
		toLight := l.Origin.Sub(target)
		return toLight, toLight.Magnitude()
	}
}

// Radiance returns the light's contribution at target: position-invariant
// for directional lights, inverse-square attenuated for point lights.
func (l Light) Radiance(target Vec3) ColorRGB {
	switch l.Kind {
	case LightDirectional:
		return l.Color.Scale(l.Intensity)
	default:
		d := l.Origin.Sub(target).Magnitude()
		if d < 1e-8 {
			d = 1e-8
		}
		return l.Color.Scale(l.Intensity / (d * d))
	}
}
