package scene

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier
	Name        string `json:"name"`               // Scene name
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Group       string `json:"group"`              // Grouping category
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Path to the description file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// ListSceneFiles scans dir for YAML, TOML and JSON scene descriptions.
// A missing directory yields an empty list; unreadable files are logged and skipped.
func ListSceneFiles(dir string, logger *slog.Logger) ([]SceneInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := FormatFromPath(path); err != nil {
			continue
		}

		info, err := ParseSceneMetadata(path)
		if err != nil {
			logger.Warn("failed to parse scene metadata", "file", path, "error", err)
			continue
		}
		scenes = append(scenes, info)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a description file.
// The file name stands in for a missing name.
func ParseSceneMetadata(path string) (SceneInfo, error) {
	filename := filepath.Base(path)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	d, err := ReadDescription(path)
	if err != nil {
		return SceneInfo{}, err
	}

	info := SceneInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        d.Name,
		Description: d.Description,
		Group:       d.Group,
		Type:        "file",
		FilePath:    path,
	}
	if info.Name == "" {
		info.Name = titleCase(nameWithoutExt)
	}
	if info.Group == "" {
		info.Group = fileGroup
	}
	info.DisplayName = info.Name

	return info, nil
}

// ListAllScenes returns built-in scenes and the description files in dir, grouped by category
func ListAllScenes(dir string, logger *slog.Logger) (ScenesResponse, error) {
	var response ScenesResponse

	allScenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		allScenes = append(allScenes, b.info)
	}

	fileScenes, err := ListSceneFiles(dir, logger)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	allScenes = append(allScenes, fileScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// Load resolves a scene reference: a built-in name, or a path to a description file
func Load(ref string, opts Options) (*Scene, error) {
	if _, err := FormatFromPath(ref); err == nil {
		return LoadFile(ref, opts.Logger)
	}
	return Builtin(ref, opts)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
