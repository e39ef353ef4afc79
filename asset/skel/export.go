package skel

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/utils"
)

// Export writes the skeleton to destPath. Only the binary layout
// exists for skeletons; a json destination is rejected instead of
// emitting a document holding nothing but a version stamp.
func Export(res host.SkeletonResource, destPath string, cfg *config.Config) error {
	if res == nil {
		return errors.Errorf("Nil skeleton resource for %q", destPath)
	}
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}

	switch suffix := filepath.Ext(destPath); suffix {
	case cfg.Formats.Skeleton:
	case cfg.Formats.JSON:
		return errors.Errorf("Skeleton json form not supported, use %q", cfg.Formats.Skeleton)
	default:
		return errors.Errorf("Unknown skeleton destination suffix %q", suffix)
	}

	s, err := FromResource(res)
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
	if err := s.marshalTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
