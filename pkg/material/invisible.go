package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Invisible neither scatters nor emits. Internal helper shapes tag their hits
// with it before a real material is attached.
type Invisible struct {
	nonEmissive
}

// Scatter never scatters
func (Invisible) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}
