package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadSky parses a TMX sky layout. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (headless runner).
func LoadSky(fsys fs.FS, tmxPath string) (*SkyLayout, error) {
	skyMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &SkyLayout{
		Width:  skyMap.Width * skyMap.TileWidth,
		Height: skyMap.Height * skyMap.TileHeight,
	}
	// Properties is nil when the map has no <properties> block
	if skyMap.Properties != nil {
		layout.Name = skyMap.Properties.GetString("name")
	}
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}

	for _, og := range skyMap.ObjectGroups {
		if og.Name != "Clouds" {
			continue
		}
		for _, o := range og.Objects {
			layout.Clouds = append(layout.Clouds, Cloud{
				X:     o.X,
				Y:     o.Y,
				W:     o.Width,
				H:     o.Height,
				Drift: o.Properties.GetFloat("drift"),
			})
		}
	}

	// Back to front: higher clouds are drawn first
	sort.SliceStable(layout.Clouds, func(i, j int) bool {
		return layout.Clouds[i].Y < layout.Clouds[j].Y
	})

	return layout, nil
}
