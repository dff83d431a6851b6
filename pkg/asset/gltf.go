package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/scene"
	"github.com/qmuntal/gltf"
)

// characterSize is the unscaled box a humanoid model is drawn as
var characterSize = mgl32.Vec3{0.5, 1.8, 0.35}

// GLTFDecoder reads .gltf/.glb files
type GLTFDecoder struct{}

// Decode opens path and returns its node and animation clips
func (GLTFDecoder) Decode(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	node := scene.NewNode(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	node.Size = characterSize

	clips := make([]anim.Clip, 0, len(doc.Animations))
	for i, a := range doc.Animations {
		// Exported clips often share a generic name, so qualify by file
		name := node.Name + "/" + a.Name
		if a.Name == "" {
			name = fmt.Sprintf("%s/%d", node.Name, i)
		}
		clips = append(clips, anim.Clip{Name: name, Duration: clipDuration(doc, a)})
	}

	return &Model{Path: path, Node: node, Clips: clips}, nil
}

// clipDuration is the latest keyframe time across the animation's samplers
func clipDuration(doc *gltf.Document, a *gltf.Animation) float32 {
	var duration float32
	for _, s := range a.Samplers {
		idx := int(s.Input)
		if idx < 0 || idx >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[idx]
		if len(acc.Max) == 0 {
			continue
		}
		if end := float32(acc.Max[0]); end > duration {
			duration = end
		}
	}
	return duration
}
