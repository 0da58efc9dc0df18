package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// planarFrame holds the shared setup of shapes spanned by a corner and two edges
type planarFrame struct {
	Corner core.Vec3 // Q: origin of the plane coordinates
	U, V   core.Vec3 // Edge vectors
	Normal core.Vec3 // Unit normal (U × V normalized)
	w      core.Vec3 // n / (n·n) with n = U × V unnormalized
	plane  plane
}

func newPlanarFrame(corner, u, v core.Vec3) (planarFrame, bool) {
	n := u.Cross(v)
	if n.LengthSquared() == 0 {
		return planarFrame{}, false
	}
	normal := n.Normalize()
	return planarFrame{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		w:      n.Divide(n.Dot(n)),
		plane:  newPlane(corner, normal),
	}, true
}

// hit intersects the supporting plane, then maps the hit point into (alpha, beta)
// plane coordinates and asks interior whether it lies inside the shape.
func (f *planarFrame) hit(ray core.Ray, rayT core.Interval, mat material.Material, interior func(alpha, beta float64) bool) (*material.HitRecord, bool) {
	rec, ok := f.plane.Hit(ray, rayT, nil)
	if !ok {
		return nil, false
	}

	p := rec.Point.Subtract(f.Corner)
	alpha := f.w.Dot(p.Cross(f.V))
	beta := f.w.Dot(f.U.Cross(p))
	if !interior(alpha, beta) {
		return nil, false
	}

	rec.Material = mat
	rec.UV = core.NewVec2(alpha, beta)
	rec.SetFaceNormal(ray, f.Normal)
	return rec, true
}
