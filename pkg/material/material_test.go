package material

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	if m.Color != core.White {
		t.Errorf("Color = %v, want white", m.Color)
	}
	if m.Ambient() != 0 {
		t.Errorf("Ambient() = %v, want 0", m.Ambient())
	}
	if m.Diffuse() != 1 {
		t.Errorf("Diffuse() = %v, want 1", m.Diffuse())
	}
	if m.Specular() != 0 {
		t.Errorf("Specular() = %v, want 0", m.Specular())
	}
	if m.Shininess() != 0 {
		t.Errorf("Shininess() = %v, want 0", m.Shininess())
	}
}

func TestNewMaterial(t *testing.T) {
	tests := []struct {
		name          string
		ambient       float64
		diffuse       float64
		shininess     float64
		wantAmbient   float64
		wantDiffuse   float64
		wantSpecular  float64
		wantShininess float64
	}{
		{
			name:    "Specular derived from diffuse",
			ambient: 0.5, diffuse: 0.1, shininess: 0.5,
			wantAmbient: 0.5, wantDiffuse: 0.1, wantSpecular: 0.9, wantShininess: 0.5,
		},
		{
			name:    "Fully diffuse",
			ambient: 0, diffuse: 1, shininess: 50,
			wantAmbient: 0, wantDiffuse: 1, wantSpecular: 0, wantShininess: 50,
		},
		{
			name:    "Out of range inputs clamp",
			ambient: 1.8, diffuse: -0.5, shininess: -3,
			wantAmbient: 1, wantDiffuse: 0, wantSpecular: 1, wantShininess: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial(tt.ambient, tt.diffuse, tt.shininess)

			if m.Ambient() != tt.wantAmbient {
				t.Errorf("Ambient() = %v, want %v", m.Ambient(), tt.wantAmbient)
			}
			if m.Diffuse() != tt.wantDiffuse {
				t.Errorf("Diffuse() = %v, want %v", m.Diffuse(), tt.wantDiffuse)
			}
			if m.Specular() != tt.wantSpecular {
				t.Errorf("Specular() = %v, want %v", m.Specular(), tt.wantSpecular)
			}
			if m.Shininess() != tt.wantShininess {
				t.Errorf("Shininess() = %v, want %v", m.Shininess(), tt.wantShininess)
			}
		})
	}
}

func TestNewColoredMaterial(t *testing.T) {
	m := NewColoredMaterial(core.Red, 0.5, 0.1, 0.5)

	if m.Color != core.Red {
		t.Errorf("Color = %v, want red", m.Color)
	}
	if m.Specular() != 0.9 {
		t.Errorf("Specular() = %v, want 0.9", m.Specular())
	}
}

func TestMaterial_SetDiffuse_InvariantHolds(t *testing.T) {
	inputs := []float64{0, 0.25, 0.5, 1, -2, 1.5, 0.333}

	for _, d := range inputs {
		m := DefaultMaterial()
		m.SetDiffuse(d)

		if sum := m.Diffuse() + m.Specular(); math.Abs(sum-1) > core.Epsilon {
			t.Errorf("SetDiffuse(%v): diffuse+specular = %v, want 1", d, sum)
		}
		if m.Diffuse() < 0 || m.Diffuse() > 1 {
			t.Errorf("SetDiffuse(%v): diffuse %v out of range", d, m.Diffuse())
		}
	}
}

func TestMaterial_SetSpecular_InvariantHolds(t *testing.T) {
	inputs := []float64{0, 0.8, 1, -1, 2}

	for _, s := range inputs {
		m := DefaultMaterial()
		m.SetSpecular(s)

		if sum := m.Diffuse() + m.Specular(); math.Abs(sum-1) > core.Epsilon {
			t.Errorf("SetSpecular(%v): diffuse+specular = %v, want 1", s, sum)
		}
	}
}

func TestMaterial_SetAmbient_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"In range", 0.5, 0.5},
		{"Above one", 1.8, 1},
		{"Below zero", -0.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			m.SetAmbient(tt.input)
			if m.Ambient() != tt.want {
				t.Errorf("SetAmbient(%v): Ambient() = %v, want %v", tt.input, m.Ambient(), tt.want)
			}
		})
	}
}

func TestMaterial_SetShininess_ClampsLowOnly(t *testing.T) {
	m := DefaultMaterial()

	m.SetShininess(-5)
	if m.Shininess() != 0 {
		t.Errorf("SetShininess(-5): Shininess() = %v, want 0", m.Shininess())
	}

	// No upper bound
	m.SetShininess(5000)
	if m.Shininess() != 5000 {
		t.Errorf("SetShininess(5000): Shininess() = %v, want 5000", m.Shininess())
	}
}
