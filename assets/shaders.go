package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// DesaturateShader grays out deflated balloons
	DesaturateShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if DesaturateShader != nil {
		return nil
	}

	src, err := shaderFS.ReadFile("shaders/desaturate.kage")
	if err != nil {
		return fmt.Errorf("failed to read desaturate shader: %w", err)
	}
	DesaturateShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("failed to compile desaturate shader: %w", err)
	}

	return nil
}
