package core

// Surface is anything a ray can intersect: a primitive or an aggregate.
// Hit returns a populated hit record iff the ray intersects the surface with
// a parameter in [tMin, tMax]. Implementations must set the record's normal
// via SetFaceNormal and set Surface to themselves.
type Surface interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// Material returns the surface's shading material, or nil if none is
	// assigned. Aggregates return nil.
	Material() Material
}

// Material evaluates the local reflectance at a hit point. Both lightDir and
// viewDir point away from the surface (toward the light and the viewer).
type Material interface {
	Evaluate(hit *HitRecord, lightDir, viewDir Vec3) Vec3
}

// Light contributes radiance to a shaded hit point. viewDir points from the
// hit point toward the viewer.
type Light interface {
	Illuminate(hit *HitRecord, viewDir Vec3) Vec3
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
