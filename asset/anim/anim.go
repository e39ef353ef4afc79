// Package anim serializes animation clips as one raw keyframe track
// per bone, in the skeleton's bone order. The exporter is a lossless
// passthrough: no resampling, no interpolation, and the three key
// channels of a track are free to hold different key counts.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/host"
)

type Track struct {
	ScaleKeys    []mgl32.Vec3
	RotationKeys []mgl32.Quat
	PositionKeys []mgl32.Vec3
}

type Animation struct {
	Name   string
	Tracks []Track
}

func FromResource(res host.AnimationResource) (*Animation, error) {
	if res == nil {
		return nil, errors.Errorf("Nil animation resource")
	}

	numTracks := res.NumTracks()
	a := &Animation{
		Name:   res.Ref().Name,
		Tracks: make([]Track, numTracks),
	}
	for i := 0; i < numTracks; i++ {
		track := res.Track(i)
		a.Tracks[i] = Track{
			ScaleKeys:    track.ScaleKeys(),
			RotationKeys: track.RotationKeys(),
			PositionKeys: track.PositionKeys(),
		}
	}
	return a, nil
}
