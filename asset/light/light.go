// Package light holds the directional light record. Lights have no
// standalone file; they are only embedded in the map's light section.
package light

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/utils"
)

type Light struct {
	Color     utils.ColorFloat
	Direction mgl32.Vec3
	Intensity float32
}

func FromActor(actor host.LightActor) Light {
	return Light{
		Color:     actor.Color,
		Direction: actor.Direction,
		Intensity: actor.Intensity,
	}
}

// MarshalTo writes {vec4 linearColor, vec3 direction, float
// intensity}, the map light section element.
func (l *Light) MarshalTo(w *utils.Writer) error {
	if err := w.WriteVec4(mgl32.Vec4(l.Color)); err != nil {
		return err
	}
	if err := w.WriteVec3(l.Direction); err != nil {
		return err
	}
	return w.WriteFloat32(l.Intensity)
}

func Decode(r *utils.Reader) (Light, error) {
	var l Light
	col, err := r.ReadVec4()
	if err != nil {
		return l, err
	}
	l.Color = utils.NewColorFloatA(col[:])
	if l.Direction, err = r.ReadVec3(); err != nil {
		return l, err
	}
	l.Intensity, err = r.ReadFloat32()
	return l, err
}
