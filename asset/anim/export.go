package anim

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/utils"
)

// Export writes the clip to destPath. Animations only have the
// binary layout.
func Export(res host.AnimationResource, destPath string, cfg *config.Config) error {
	if res == nil {
		return errors.Errorf("Nil animation resource for %q", destPath)
	}
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}

	switch suffix := filepath.Ext(destPath); suffix {
	case cfg.Formats.Animation:
	case cfg.Formats.JSON:
		return errors.Errorf("Animation json form not supported, use %q", cfg.Formats.Animation)
	default:
		return errors.Errorf("Unknown animation destination suffix %q", suffix)
	}

	a, err := FromResource(res)
	if err != nil {
		return err
	}

	cm, err := cfg.Charmap()
	if err != nil {
		return err
	}
	w, err := utils.NewWriter(destPath, cm)
	if err != nil {
		return err
	}
	if err := a.marshalTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
