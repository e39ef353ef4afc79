package level

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/merkaril/sceneexport/asset/light"
	"github.com/merkaril/sceneexport/utils"
)

// Decoded map record, for tests and tooling.

type Camera struct {
	Location    mgl32.Vec3
	LookAt      mgl32.Vec3
	FOV         float32
	AspectRatio float32
}

type Placement struct {
	Rotation     mgl32.Quat
	Location     mgl32.Vec3
	ResourceName string
}

type Map struct {
	Cameras            []Camera
	Lights             []light.Light
	StaticPlacements   []Placement
	SkeletalPlacements []Placement
}

func Decode(r io.Reader, cm *charmap.Charmap) (*Map, error) {
	br := utils.NewReader(r, cm)
	m := &Map{}

	cameraCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if cameraCount < 0 {
		return nil, errors.Errorf("Negative camera count %d", cameraCount)
	}
	m.Cameras = make([]Camera, cameraCount)
	for i := range m.Cameras {
		c := &m.Cameras[i]
		if c.Location, err = br.ReadVec3(); err != nil {
			return nil, err
		}
		if c.LookAt, err = br.ReadVec3(); err != nil {
			return nil, err
		}
		if c.FOV, err = br.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.AspectRatio, err = br.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	lightCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if lightCount < 0 {
		return nil, errors.Errorf("Negative light count %d", lightCount)
	}
	m.Lights = make([]light.Light, lightCount)
	for i := range m.Lights {
		if m.Lights[i], err = light.Decode(br); err != nil {
			return nil, err
		}
	}

	if m.StaticPlacements, err = decodePlacements(br); err != nil {
		return nil, err
	}
	if m.SkeletalPlacements, err = decodePlacements(br); err != nil {
		return nil, err
	}

	return m, nil
}

func decodePlacements(br *utils.Reader) ([]Placement, error) {
	count, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errors.Errorf("Negative placement count %d", count)
	}
	placements := make([]Placement, count)
	for i := range placements {
		p := &placements[i]
		if p.Rotation, err = br.ReadQuat(); err != nil {
			return nil, err
		}
		if p.Location, err = br.ReadVec3(); err != nil {
			return nil, err
		}
		if p.ResourceName, err = br.ReadString(); err != nil {
			return nil, err
		}
	}
	return placements, nil
}
