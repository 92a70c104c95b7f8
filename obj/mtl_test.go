package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/g3d"
)

const sampleMTL = `# two materials
newmtl brick
Ka 0.1 0.1 0.1
Kd 0.8 0.2 0.1
map_Kd -s 1 1 1 textures/brick.png

newmtl  plain
`

func TestParseMTL(t *testing.T) {
	mats, err := ParseMTL(strings.NewReader(sampleMTL))
	if err != nil {
		t.Fatal(err)
	}
	if len(mats) != 2 {
		t.Fatalf("materials = %d, want 2", len(mats))
	}

	brick := mats["brick"]
	if brick.DiffuseMap != "textures/brick.png" {
		t.Errorf("DiffuseMap = %q", brick.DiffuseMap)
	}
	if brick.Diffuse != (g3d.RGB{R: 0.8, G: 0.2, B: 0.1}) {
		t.Errorf("Diffuse = %v", brick.Diffuse)
	}

	plain, ok := mats["plain"]
	if !ok {
		t.Fatal("plain material missing")
	}
	if plain.DiffuseMap != "" || plain.Diffuse != g3d.White {
		t.Errorf("plain = %+v, want defaults", plain)
	}
}

func TestParseMTL_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Kd before newmtl", "Kd 1 1 1\n"},
		{"map_Kd before newmtl", "map_Kd a.png\n"},
		{"short Kd", "newmtl a\nKd 1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMTL(strings.NewReader(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.mtl")
	if err := os.WriteFile(path, []byte(sampleMTL), 0o600); err != nil {
		t.Fatal(err)
	}
	mats, err := LoadMTL(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mats["brick"]; !ok {
		t.Error("brick not loaded")
	}
}
