package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	MaterialType string         `json:"materialType,omitempty"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	Distance     float64        `json:"distance"`
	FrontFace    bool           `json:"frontFace"`
	Properties   map[string]any `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a linear color as an sRGB hex string
func hexColor(c core.Vec3) string {
	return colorful.LinearRgb(c.X, c.Y, c.Z).Clamped().Hex()
}

// extractMaterialInfo describes a material, evaluating textures at the hit
func extractMaterialInfo(hit *material.HitRecord) (string, map[string]any) {
	properties := make(map[string]any)

	switch m := hit.Material.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff"
		return "dielectric", properties

	case *material.DiffuseLight:
		emission := m.Emission.Evaluate(hit.UV, hit.Point)
		properties["emission"] = vecArray(emission)
		properties["color"] = hexColor(emission)
		return "light", properties

	case *material.Isotropic:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "isotropic", properties

	default:
		return fmt.Sprintf("%T", m), properties
	}
}

// inspectPixel casts one camera ray through pixel (x, y) and returns the first hit.
// A fixed seed keeps repeated inspections of the same pixel identical.
func inspectPixel(sceneObj *scene.Scene, x, y int) (*material.HitRecord, bool) {
	sampler := core.NewSeededSampler(core.StreamSeed(0, y))
	ray := sceneObj.Camera.GetRay(x, y, sampler)
	return sceneObj.World.Hit(ray, core.NewInterval(integrator.ShadowAcneEpsilon, math.Inf(1)), sampler)
}

// handleInspect reports what the camera sees through a single pixel
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
	}

	pixelX, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
	}
	pixelY, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
	}

	sceneObj, err := s.loadScene(req.Scene, s.logger)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err := applyOverrides(sceneObj, req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	camera := sceneObj.Camera
	if pixelX < 0 || pixelX >= camera.Width() || pixelY < 0 || pixelY >= camera.Height() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
	}

	hit, ok := inspectPixel(sceneObj, pixelX, pixelY)
	if !ok {
		return c.JSON(http.StatusOK, InspectResponse{Hit: false})
	}

	materialType, properties := extractMaterialInfo(hit)
	return c.JSON(http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	})
}
