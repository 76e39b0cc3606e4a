package raytracer

import "math"

// MaterialKind tags which BRDF variant a Material holds. Dispatch is a plain
// switch over this tag rather than an interface, avoiding a heap-allocated
// vtable per material the way the teacher's old IMaterial did.
type MaterialKind int

const (
	MaterialSolidColor MaterialKind = iota
	MaterialLambert
	MaterialLambertPhong
	MaterialCookTorrance
)

// Material is a tagged union of the four supported BRDFs. Only the fields
// relevant to Kind are meaningful.
type Material struct {
	Kind MaterialKind

	Color ColorRGB // SolidColor

	DiffuseColor ColorRGB // Lambert, LambertPhong
	Kd           float64  // Lambert, LambertPhong diffuse reflectance coefficient

	Ks    float64 // LambertPhong specular coefficient
	Alpha float64 // LambertPhong shininess exponent

	Albedo    ColorRGB // CookTorrance
	Metalness float64  // CookTorrance, 0=dielectric..1=metal
	Roughness float64  // CookTorrance, 0=mirror..1=fully rough
}

// NewSolidColorMaterial returns an unlit material that always shades as c.
func NewSolidColorMaterial(c ColorRGB) Material {
	return Material{Kind: MaterialSolidColor, Color: c}
}

// NewLambertMaterial returns a pure diffuse material.
func NewLambertMaterial(diffuseColor ColorRGB, kd float64) Material {
	return Material{Kind: MaterialLambert, DiffuseColor: diffuseColor, Kd: kd}
}

// NewLambertPhongMaterial returns a diffuse+specular-highlight material.
func NewLambertPhongMaterial(diffuseColor ColorRGB, kd, ks, alpha float64) Material {
	return Material{Kind: MaterialLambertPhong, DiffuseColor: diffuseColor, Kd: kd, Ks: ks, Alpha: alpha}
}

// NewCookTorranceMaterial returns a physically-based metal/dielectric material.
func NewCookTorranceMaterial(albedo ColorRGB, metalness, roughness float64) Material {
	return Material{Kind: MaterialCookTorrance, Albedo: albedo, Metalness: metalness, Roughness: roughness}
}

// Lambert evaluates the pure diffuse term c*kd/pi.
func Lambert(c ColorRGB, kd float64) ColorRGB {
	return c.Scale(kd / math.Pi)
}

// FresnelSchlick evaluates the Schlick approximation of the Fresnel term.
func FresnelSchlick(cosTheta float64, f0 ColorRGB) ColorRGB {
	c := clamp(cosTheta, 0, 1)
	factor := math.Pow(1-c, 5)
	return ColorRGB{
		R: f0.R + (1-f0.R)*factor,
		G: f0.G + (1-f0.G)*factor,
		B: f0.B + (1-f0.B)*factor,
	}
}

// distributionGGX evaluates the GGX normal distribution function.
func distributionGGX(nh, roughness float64) float64 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	denom := nh*nh*(alpha2-1) + 1
	return alpha2 / (math.Pi * denom * denom)
}

// geometrySchlickGGX evaluates a single Smith G1 term.
func geometrySchlickGGX(x, k float64) float64 {
	return x / (x*(1-k) + k)
}

// geometrySmith evaluates the combined Smith shadow-masking term.
func geometrySmith(nv, nl, roughness float64) float64 {
	k := (roughness + 1) * (roughness + 1) / 8
	return geometrySchlickGGX(nv, k) * geometrySchlickGGX(nl, k)
}

// Shade evaluates the material's BRDF for a hit, incoming-to-light direction
// l and outgoing (toward-viewer) direction v; l, v and hit.Normal must be
// unit vectors.
func (m Material) Shade(hit HitRecord, l, v Vec3) ColorRGB {
	switch m.Kind {
	case MaterialSolidColor:
		return m.Color
	case MaterialLambert:
		return Lambert(m.DiffuseColor, m.Kd)
	case MaterialLambertPhong:
		diffuse := Lambert(m.DiffuseColor, m.Kd)
		reflected := Reflect(l.Negate(), hit.Normal)
		cosAlpha := math.Max(0, reflected.Dot(v))
		specular := math.Pow(cosAlpha, m.Alpha) * m.Ks
		return diffuse.Add(White.Scale(specular))
	case MaterialCookTorrance:
		return m.shadeCookTorrance(hit, l, v)
	default:
		return Black
	}
}

func (m Material) shadeCookTorrance(hit HitRecord, l, v Vec3) ColorRGB {
	n := hit.Normal
	h := v.Add(l).Normalized()

	f0 := ColorRGB{R: 0.04, G: 0.04, B: 0.04}
	if m.Metalness != 0 {
		f0 = m.Albedo
	}
	hv := math.Max(0, h.Dot(v))
	f := FresnelSchlick(hv, f0)

	nh := math.Max(0, n.Dot(h))
	nv := math.Max(0, n.Dot(v))
	nl := math.Max(0, n.Dot(l))

	d := distributionGGX(nh, m.Roughness)
	g := geometrySmith(nv, nl, m.Roughness)

	var specular ColorRGB
	denom := 4 * nv * nl
	if denom > 1e-6 {
		specular = f.Scale(d * g / denom)
	}

	var kd ColorRGB
	if m.Metalness != 1 {
		kd = ColorRGB{R: 1 - f.R, G: 1 - f.G, B: 1 - f.B}
	}
	diffuse := m.Albedo.Mul(kd).Scale(1 / math.Pi)

	return diffuse.Add(specular)
}
