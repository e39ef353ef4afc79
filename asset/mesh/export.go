package mesh

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/utils"
)

// Export encodes the mesh's highest detail level to destPath. The
// path suffix selects the encoding: the configured binary suffixes,
// ".json" for the structured document, ".glb"/".fbx" for the
// interchange formats. A non-nil error means the destination must be
// treated as absent or corrupt, never as unchanged.
func Export(res host.MeshResource, destPath string, cfg *config.Config) error {
	if res == nil {
		return errors.Errorf("Nil mesh resource for %q", destPath)
	}
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}

	m, err := FromResource(res)
	if err != nil {
		return err
	}

	switch suffix := filepath.Ext(destPath); suffix {
	case cfg.Formats.StaticMesh, cfg.Formats.SkeletalMesh:
		return m.exportBinary(destPath, cfg)
	case cfg.Formats.JSON:
		return m.exportJSON(destPath, cfg)
	case cfg.Formats.GLTF:
		return m.exportGLTF(destPath)
	case cfg.Formats.FBX:
		return m.exportFBX(destPath)
	default:
		return errors.Errorf("Unknown mesh destination suffix %q", suffix)
	}
}

func (m *Mesh) exportBinary(destPath string, cfg *config.Config) error {
	cm, err := cfg.Charmap()
	if err != nil {
		return err
	}
	w, err := utils.NewWriter(destPath, cm)
	if err != nil {
		return err
	}
	if err := m.marshalTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
