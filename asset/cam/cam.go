// Package cam exports cameras. Cameras only exist as the structured
// json document; there is no binary form outside the map placement
// sections.
package cam

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/utils"
)

type jsonVec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type jsonRotation struct {
	Roll  float32 `json:"roll"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

type jsonCamera struct {
	Location    jsonVec      `json:"Location"`
	Rotation    jsonRotation `json:"Rotation"`
	LookAt      jsonVec      `json:"LookAt"`
	FOV         float32      `json:"FOV"`
	AspectRatio float32      `json:"AspectRatio"`
}

type jsonDocument struct {
	FileVersion int        `json:"FileVersion"`
	Camera      jsonCamera `json:"Camera"`
}

func Export(actor host.CameraActor, destPath string, cfg *config.Config) error {
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}
	if suffix := filepath.Ext(destPath); suffix != cfg.Formats.JSON {
		return errors.Errorf("Camera only has a json form, got suffix %q", suffix)
	}

	// roll/yaw/pitch in degrees, like the rest of the document.
	euler := utils.RadiansToDegreeV3(utils.QuatToEuler(actor.Rotation))

	doc := jsonDocument{
		FileVersion: cfg.FileVersion,
		Camera: jsonCamera{
			Location:    jsonVec{actor.Location[0], actor.Location[1], actor.Location[2]},
			Rotation:    jsonRotation{Roll: euler[0], Yaw: euler[2], Pitch: euler[1]},
			LookAt:      jsonVec{actor.LookAt[0], actor.LookAt[1], actor.LookAt[2]},
			FOV:         actor.FOV,
			AspectRatio: actor.AspectRatio,
		},
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal camera %q", actor.Name)
	}
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return errors.Wrapf(err, "Failed to write %q", destPath)
	}
	return nil
}
