package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const filePrefix = "file:"

// RenderRequest represents a render request from the client.
// Zero Width, Samples and Depth keep the scene's own settings.
type RenderRequest struct {
	Scene   string // Built-in name or "file:<name>" id from /api/scenes
	Width   int
	Samples int
	Depth   int
	Seed    int64
	Format  string // "png" or "ppm"
}

// parseRenderRequest parses request parameters
func parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	query := c.QueryParams()
	req := &RenderRequest{Scene: "cornell-box", Format: "png"}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "spp", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, 1000); err != nil {
		return nil, err
	}
	if value := query.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
	}
	if format := query.Get("format"); format != "" {
		req.Format = strings.ToLower(format)
	}
	if req.Format != "png" && req.Format != "ppm" {
		return nil, fmt.Errorf("format must be png or ppm, got: %s", req.Format)
	}

	return req, nil
}

// loadScene resolves a built-in name or a file id listed in the scene directory.
// Arbitrary paths are not accepted.
func (s *Server) loadScene(ref string, logger *slog.Logger) (*scene.Scene, error) {
	if !strings.HasPrefix(ref, filePrefix) {
		return scene.Builtin(ref, scene.Options{Logger: logger})
	}

	files, err := scene.ListSceneFiles(s.sceneDir, logger)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == ref {
			return scene.LoadFile(info.FilePath, logger)
		}
	}
	return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, ref)
}

// applyOverrides applies the request's size and sampling to the scene camera
func applyOverrides(s *scene.Scene, req *RenderRequest) error {
	camera := s.Camera
	if req.Width > 0 {
		var err error
		if camera, err = camera.WithWidth(req.Width); err != nil {
			return err
		}
	}
	spp, depth := camera.SamplesPerPixel(), camera.MaxDepth()
	if req.Samples > 0 {
		spp = req.Samples
	}
	if req.Depth > 0 {
		depth = req.Depth
	}
	s.Camera = camera.WithSampling(spp, depth)
	return nil
}

// handleRender renders a scene synchronously and returns the encoded image.
// The client disconnecting cancels the render.
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
	}

	logger, console := NewConsoleLogger(s.logger.With("scene", req.Scene))

	sceneObj, err := s.loadScene(req.Scene, logger)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]any{
			"error":   err.Error(),
			"console": console.Messages(),
		})
	}
	if err := applyOverrides(sceneObj, req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	config := renderer.DefaultRenderConfig()
	config.Seed = req.Seed
	config.Background = sceneObj.Background

	rt := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, config, logger)
	frame, stats, err := rt.Render(c.Request().Context())
	if err != nil {
		logger.Warn("render stopped", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = frame.WritePPM(&buf)
	} else {
		err = frame.WritePNG(&buf)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	header := c.Response().Header()
	header.Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	header.Set("X-Render-Samples", strconv.FormatInt(int64(stats.TotalSamples), 10))
	header.Set("X-Render-Noise", strconv.FormatFloat(stats.AverageVariance, 'g', 6, 64))
	header.Set("X-Render-Warnings", strconv.Itoa(console.Count(slog.LevelWarn)))
	header.Set("Cache-Control", "no-cache")

	s.logger.Info("render served",
		"scene", req.Scene,
		"width", frame.Width,
		"height", frame.Height,
		"elapsed", stats.Elapsed.Round(time.Millisecond))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
