package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"equirec-perspective/internal/config"
)

// ManifestEntry describes one rendered view in the output manifest.
type ManifestEntry struct {
	Name          string  `json:"name"`
	FOV           float64 `json:"fov"`
	Theta         float64 `json:"theta"`
	Phi           float64 `json:"phi"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Interpolation string  `json:"interpolation"`
	Image         string  `json:"image"`
}

// WriteManifest writes manifest.json describing all rendered views.
func WriteManifest(path string, views []config.View, format string) error {
	entries := make([]ManifestEntry, len(views))
	for i, v := range views {
		entries[i] = ManifestEntry{
			Name:          v.Name,
			FOV:           v.FOV,
			Theta:         v.Theta,
			Phi:           v.Phi,
			Width:         v.Width,
			Height:        v.Height,
			Interpolation: v.Interpolation,
			Image:         fmt.Sprintf("%s.%s", v.Name, normalizeExt(format)),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
