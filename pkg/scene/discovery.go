package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultScenesDir is searched for JSON scene files
const DefaultScenesDir = "scenes"

// Scene types reported by SceneInfo
const (
	TypeBuiltin = "builtin"
	TypeJSON    = "json"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Name accepted by Create
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "json"
	FilePath    string `json:"filePath,omitempty"` // Path to the JSON file (json type only)
}

// FindScenesDir returns the first existing scenes directory, or "" if none
func FindScenesDir() string {
	for _, path := range []string{DefaultScenesDir, filepath.Join("..", DefaultScenesDir)} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListScenes returns the built-in scenes followed by the JSON scenes in dir,
// each group sorted by ID. An empty dir lists built-ins only.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: b.description,
			Type:        TypeBuiltin,
		})
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })

	if dir == "" {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		info, err := ParseJSONMetadata(file)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	return scenes, nil
}

// ParseJSONMetadata extracts the name and description of a JSON scene file
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	base := filepath.Base(filePath)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	info := SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Type:        TypeJSON,
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	if meta.Name != "" {
		info.DisplayName = meta.Name
	}
	info.Description = meta.Description

	return info, nil
}

// Create returns the scene registered under name. Built-ins win over files;
// otherwise name is looked up as <dir>/<name>.json and finally as a path.
func Create(name, dir string) (*Scene, error) {
	if b, ok := builtins[name]; ok {
		return b.create(), nil
	}

	if dir != "" && !strings.ContainsAny(name, `/\`) {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return LoadJSON(path)
		}
	}

	if strings.HasSuffix(strings.ToLower(name), ".json") {
		if _, err := os.Stat(name); err == nil {
			return LoadJSON(name)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
