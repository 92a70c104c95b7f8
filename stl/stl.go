// Package stl reads binary STL meshes.
//
// A binary STL file is an 80-byte header, a little-endian uint32 facet
// count and one 50-byte record per facet: the facet normal, three
// vertices (all float32 triples) and a 2-byte attribute word.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/g3d"
)

const (
	headerSize = 80
	recordSize = 50
)

var (
	// ErrTruncated is returned when the input ends before the declared
	// number of facets.
	ErrTruncated = errors.New("stl: truncated file")

	// ErrASCII is returned for ASCII STL input, which is not supported.
	ErrASCII = errors.New("stl: ASCII STL is not supported")
)

// Load reads the binary STL file at path.
func Load(path string) (g3d.Mesh, error) {
	b, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return g3d.Mesh{}, fmt.Errorf("stl: %w", err)
	}
	mesh, err := decode(b)
	if err != nil {
		return g3d.Mesh{}, err
	}
	g3d.Logger().Info("stl loaded", "path", path, "facets", len(mesh.Faces),
		"header", string(bytes.TrimRight(b[:headerSize], "\x00 ")))
	return mesh, nil
}

// Read decodes a binary STL stream.
func Read(r io.Reader) (g3d.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return g3d.Mesh{}, fmt.Errorf("stl: %w", err)
	}
	return decode(b)
}

// decode builds one triangle per facet with its own three vertices. The
// facet normal is shared by the three corners; a zero normal is replaced
// by the geometric one.
func decode(b []byte) (g3d.Mesh, error) {
	if len(b) < headerSize+4 {
		if bytes.HasPrefix(b, []byte("solid")) {
			return g3d.Mesh{}, ErrASCII
		}
		return g3d.Mesh{}, fmt.Errorf("%w: %d bytes", ErrTruncated, len(b))
	}

	count := int(binary.LittleEndian.Uint32(b[headerSize : headerSize+4]))
	body := b[headerSize+4:]
	if len(body)/recordSize < count {
		if bytes.HasPrefix(b, []byte("solid")) && bytes.Contains(b, []byte("facet")) {
			return g3d.Mesh{}, ErrASCII
		}
		return g3d.Mesh{}, fmt.Errorf("%w: %d facets declared, %d present",
			ErrTruncated, count, len(body)/recordSize)
	}

	mesh := g3d.Mesh{
		Vertices: make([][4]float64, 0, count*3),
		Normals:  make([]g3d.Vec3, 0, count),
		Faces:    make([]g3d.Face, 0, count),
	}
	for i := 0; i < count; i++ {
		rec := body[i*recordSize : (i+1)*recordSize]
		normal := toVec3(rec[0:12])
		v1, v2, v3 := toVec3(rec[12:24]), toVec3(rec[24:36]), toVec3(rec[36:48])
		if normal.IsZero() {
			normal = v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
		}

		a := mesh.AddVertex(v1)
		mesh.AddVertex(v2)
		mesh.AddVertex(v3)
		mesh.Normals = append(mesh.Normals, normal)

		face := g3d.NewFace(a, a+1, a+2)
		n := len(mesh.Normals) - 1
		face.Normal = [3]int{n, n, n}
		mesh.Faces = append(mesh.Faces, face)
	}
	return mesh, nil
}

func toVec3(b []byte) g3d.Vec3 {
	return g3d.Vec3{
		X: toFloat(b[0:4]),
		Y: toFloat(b[4:8]),
		Z: toFloat(b[8:12]),
	}
}

func toFloat(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

// Write encodes mesh as binary STL. Each face is written with its first
// corner's normal, or the geometric normal when the face has none.
func Write(w io.Writer, mesh g3d.Mesh) error {
	var hdr [headerSize + 4]byte
	copy(hdr[:], "g3d binary stl")
	binary.LittleEndian.PutUint32(hdr[headerSize:], uint32(len(mesh.Faces))) //nolint:gosec // face count fits
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("stl: %w", err)
	}

	var rec [recordSize]byte
	for _, f := range mesh.Faces {
		var v [3]g3d.Vec3
		for k := range v {
			p := mesh.Vertices[f.Vertex[k]]
			v[k] = g3d.Vec3{X: p[0], Y: p[1], Z: p[2]}
		}
		normal := v[1].Sub(v[0]).Cross(v[2].Sub(v[0])).Normalize()
		if j := f.Normal[0]; j != g3d.NoIndex {
			normal = mesh.Normals[j]
		}

		putVec3(rec[0:12], normal)
		putVec3(rec[12:24], v[0])
		putVec3(rec[24:36], v[1])
		putVec3(rec[36:48], v[2])
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("stl: %w", err)
		}
	}
	return nil
}

func putVec3(b []byte, v g3d.Vec3) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(float32(v.Z)))
}
