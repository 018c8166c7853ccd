package scene

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestSaveScene_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three-spheres.json")
	original := NewThreeSpheresScene()

	if err := SaveScene(path, original); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	loaded, err := NewFileScene(path)
	if err != nil {
		t.Fatalf("NewFileScene failed: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("Name = %q, want %q", loaded.Name, original.Name)
	}
	if loaded.Background != original.Background {
		t.Errorf("Background = %v, want %v", loaded.Background, original.Background)
	}
	if loaded.CameraConfig != original.CameraConfig {
		t.Errorf("CameraConfig = %+v, want %+v", loaded.CameraConfig, original.CameraConfig)
	}

	if len(loaded.Surfaces) != len(original.Surfaces) {
		t.Fatalf("len(Surfaces) = %d, want %d", len(loaded.Surfaces), len(original.Surfaces))
	}
	for i := range original.Surfaces {
		want := original.Surfaces[i].(*geometry.Sphere)
		got, ok := loaded.Surfaces[i].(*geometry.Sphere)
		if !ok {
			t.Fatalf("Surfaces[%d] is %T, want *geometry.Sphere", i, loaded.Surfaces[i])
		}
		if got.Position() != want.Position() || got.Radius() != want.Radius() {
			t.Errorf("Sphere %d = %v r=%v, want %v r=%v",
				i, got.Position(), got.Radius(), want.Position(), want.Radius())
		}
		if got.Material().Color != want.Material().Color ||
			got.Material().Ambient() != want.Material().Ambient() ||
			got.Material().Diffuse() != want.Material().Diffuse() ||
			got.Material().Specular() != want.Material().Specular() ||
			got.Material().Shininess() != want.Material().Shininess() {
			t.Errorf("Sphere %d material did not survive the round trip", i)
		}
	}

	if len(loaded.Lights) != len(original.Lights) {
		t.Fatalf("len(Lights) = %d, want %d", len(loaded.Lights), len(original.Lights))
	}
	for i := range original.Lights {
		if loaded.Lights[i] != original.Lights[i] {
			t.Errorf("Light %d = %+v, want %+v", i, loaded.Lights[i], original.Lights[i])
		}
	}
}

func TestNewFileScene_CameraOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := SaveScene(path, NewThreeSpheresScene()); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	loaded, err := NewFileScene(path, geometry.CameraConfig{Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("NewFileScene failed: %v", err)
	}
	if loaded.CameraConfig.Width != 100 || loaded.CameraConfig.Height != 50 {
		t.Errorf("Camera size = %dx%d, want 100x50",
			loaded.CameraConfig.Width, loaded.CameraConfig.Height)
	}
	if loaded.CameraConfig.VFov != 60 {
		t.Errorf("Camera VFov = %v, want the file value 60", loaded.CameraConfig.VFov)
	}
}

// flatDisc is a surface kind with no scene file representation
type flatDisc struct {
	position core.Vec3
	mat      *material.Material
}

func (d *flatDisc) Position() core.Vec3 { return d.position }

func (d *flatDisc) SetPosition(p core.Vec3) { d.position = p }

func (d *flatDisc) Intersection(core.Ray) (core.Vec3, bool) { return core.Vec3{}, false }

func (d *flatDisc) NormalAt(core.Vec3) core.Vec3 { return core.NewVec3(0, 1, 0) }

func (d *flatDisc) Material() *material.Material { return d.mat }

func (d *flatDisc) SetMaterial(m *material.Material) { d.mat = m }

func TestSaveScene_RejectsUnknownSurfaces(t *testing.T) {
	s := NewThreeSpheresScene()
	s.Surfaces = append(s.Surfaces, &flatDisc{mat: material.DefaultMaterial()})

	err := SaveScene(filepath.Join(t.TempDir(), "mixed.json"), s)
	if err == nil {
		t.Fatal("Expected SaveScene to reject a non-sphere surface")
	}
	if !strings.Contains(err.Error(), "flatDisc") {
		t.Errorf("Error %q does not name the offending surface type", err)
	}
}
