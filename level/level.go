// Package level orchestrates a whole-map export: one binary map file
// with the camera/light/placement sections, plus a recursive
// best-effort export of every referenced resource into fixed
// subdirectories next to the map file.
package level

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/merkaril/sceneexport/asset/anim"
	"github.com/merkaril/sceneexport/asset/light"
	"github.com/merkaril/sceneexport/asset/mesh"
	"github.com/merkaril/sceneexport/asset/skel"
	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/logger"
	"github.com/merkaril/sceneexport/status"
	"github.com/merkaril/sceneexport/utils"
)

type Exporter struct {
	cfg      *config.Config
	scene    host.Scene
	textures host.TextureDumper
	cm       *charmap.Charmap
}

// NewExporter builds a map exporter for one scene. textures may be
// nil when the host provides no texture dump utility.
func NewExporter(scene host.Scene, cfg *config.Config, textures host.TextureDumper) (*Exporter, error) {
	if scene == nil {
		return nil, errors.Errorf("Nil scene")
	}
	cm, err := cfg.Charmap()
	if err != nil {
		return nil, err
	}
	return &Exporter{cfg: cfg, scene: scene, textures: textures, cm: cm}, nil
}

// ExportMap writes the four map sections in enumeration order and
// triggers the per-placement resource exports. Failing to open the
// map file is fatal; a failed nested resource export is logged and
// skipped so the map file itself still completes.
func (e *Exporter) ExportMap(destPath string) error {
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}

	outDir := filepath.Dir(destPath)

	w, err := utils.NewWriter(destPath, e.cm)
	if err != nil {
		return err
	}

	status.Info("Exporting map %q", e.scene.Name())

	if err := e.writeCameras(w); err != nil {
		w.Close()
		return err
	}
	if err := e.writeLights(w); err != nil {
		w.Close()
		return err
	}
	if err := e.writeStaticPlacements(w, outDir); err != nil {
		w.Close()
		return err
	}
	if err := e.writeSkeletalPlacements(w, outDir); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	status.Info("Map %q exported to %q", e.scene.Name(), destPath)
	return nil
}

func (e *Exporter) writeCameras(w *utils.Writer) error {
	cameras := e.scene.Cameras()
	if err := w.WriteInt32(int32(len(cameras))); err != nil {
		return err
	}
	for _, c := range cameras {
		if err := w.WriteVec3(c.Location); err != nil {
			return err
		}
		if err := w.WriteVec3(c.LookAt); err != nil {
			return err
		}
		if err := w.WriteFloat32(c.FOV); err != nil {
			return err
		}
		if err := w.WriteFloat32(c.AspectRatio); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeLights(w *utils.Writer) error {
	lights := e.scene.DirectionalLights()
	if err := w.WriteInt32(int32(len(lights))); err != nil {
		return err
	}
	for _, actor := range lights {
		l := light.FromActor(actor)
		if err := l.MarshalTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeStaticPlacements(w *utils.Writer, outDir string) error {
	actors := e.scene.StaticMeshActors()
	if err := w.WriteInt32(int32(len(actors))); err != nil {
		return err
	}
	for i, actor := range actors {
		if actor.Mesh == nil {
			panic(fmt.Sprintf("static mesh actor %d without mesh component", i))
		}
		ref := actor.Mesh.Ref()

		if err := e.writePlacement(w, actor.Transform, ref.Name); err != nil {
			return err
		}

		status.Progress(float32(i+1)/float32(len(actors)),
			"Static mesh %q (%d/%d)", ref.Name, i+1, len(actors))

		dest, err := e.resourcePath(outDir, e.cfg.Subdirs.StaticMesh,
			ref.Name, e.cfg.Formats.StaticMesh)
		if err != nil {
			e.skip(ref, err)
			continue
		}
		if err := mesh.Export(actor.Mesh, dest, e.cfg); err != nil {
			e.skip(ref, err)
			continue
		}
		e.dumpTextures(outDir, actor.Mesh)
	}
	return nil
}

func (e *Exporter) writeSkeletalPlacements(w *utils.Writer, outDir string) error {
	actors := e.scene.SkeletalMeshActors()
	if err := w.WriteInt32(int32(len(actors))); err != nil {
		return err
	}
	for i, actor := range actors {
		if actor.Mesh == nil || actor.Skeleton == nil {
			panic(fmt.Sprintf("skeletal mesh actor %d without mesh or skeleton component", i))
		}
		ref := actor.Mesh.Ref()

		if err := e.writePlacement(w, actor.Transform, ref.Name); err != nil {
			return err
		}

		status.Progress(float32(i+1)/float32(len(actors)),
			"Skeletal mesh %q (%d/%d)", ref.Name, i+1, len(actors))

		if dest, err := e.resourcePath(outDir, e.cfg.Subdirs.Skeletal,
			ref.Name, e.cfg.Formats.SkeletalMesh); err != nil {
			e.skip(ref, err)
		} else if err := mesh.Export(actor.Mesh, dest, e.cfg); err != nil {
			e.skip(ref, err)
		} else {
			e.dumpTextures(outDir, actor.Mesh)
		}

		skelRef := actor.Skeleton.Ref()
		if dest, err := e.resourcePath(outDir, e.cfg.Subdirs.Skeleton,
			skelRef.Name, e.cfg.Formats.Skeleton); err != nil {
			e.skip(skelRef, err)
		} else if err := skel.Export(actor.Skeleton, dest, e.cfg); err != nil {
			e.skip(skelRef, err)
		}

		if actor.Clip != nil {
			clipRef := actor.Clip.Ref()
			if dest, err := e.resourcePath(outDir, e.cfg.Subdirs.Animation,
				clipRef.Name, e.cfg.Formats.Animation); err != nil {
				e.skip(clipRef, err)
			} else if err := anim.Export(actor.Clip, dest, e.cfg); err != nil {
				e.skip(clipRef, err)
			}
		}
	}
	return nil
}

func (e *Exporter) writePlacement(w *utils.Writer, t host.Transform, name string) error {
	if err := w.WriteQuat(t.Rotation); err != nil {
		return err
	}
	if err := w.WriteVec3(t.Location); err != nil {
		return err
	}
	return w.WriteString(name)
}

// resourcePath derives the deterministic destination of a referenced
// resource. Two placements of the same resource land on the same
// path, which makes the re-export idempotent.
func (e *Exporter) resourcePath(outDir, subdir, name, suffix string) (string, error) {
	dir := filepath.Join(outDir, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "Failed to create %q", dir)
	}
	return filepath.Join(dir, name+suffix), nil
}

// skip records a failed nested export. Resource failures never abort
// the enclosing map export.
func (e *Exporter) skip(ref host.ObjectRef, err error) {
	logger.Sugar.Errorf("skipping %v %q: %v", ref.Kind, ref.Name, err)
	status.Error("Failed to export %v %q", ref.Kind, ref.Name)
}

func (e *Exporter) dumpTextures(outDir string, m host.MeshResource) {
	if e.textures == nil {
		return
	}
	dir := filepath.Join(outDir, filepath.FromSlash(e.cfg.Subdirs.Textures))
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.skip(m.Ref(), errors.Wrapf(err, "Failed to create %q", dir))
		return
	}
	if err := e.textures.DumpTextures(m, dir); err != nil {
		logger.Sugar.Warnf("texture dump failed for %q: %v", m.Ref().Name, err)
	}
}
