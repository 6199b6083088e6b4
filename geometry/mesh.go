// Package geometry supplements the core's "out of scope, interfaces
// only" stance on mesh import (spec.md §1) with a working, simplified
// implementation: ASCII STL/OBJ/PLY import, axis-aligned voxelisation
// onto the existing Cartesian grid, and solid/fluid face-adjacency
// detection that produces boundary.Element lists. Non-goals (adaptive
// or unstructured grids) still rule out anything beyond that.
package geometry

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Vec3 is a plain 3-component point or vector.
type Vec3 struct{ X, Y, Z float64 }

// Triangle is one facet of a surface mesh.
type Triangle struct{ A, B, C Vec3 }

// Mesh is an unstructured triangle soup — no topology beyond the facet
// list, which is all voxelisation needs.
type Mesh struct {
	Triangles []Triangle
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max Vec3
}

func (b BBox) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

func openScanner(path string) (*os.File, *bufio.Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	return f, sc, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		chk.Panic("geometry: malformed float %q", s)
	}
	return v
}

// ImportSTL reads an ASCII STL file ("solid ... facet normal ... outer
// loop / vertex x y z * 3 / endloop / endfacet ... endsolid").
// Binary STL is out of scope.
func ImportSTL(path string) (*Mesh, error) {
	f, sc, err := openScanner(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh := &Mesh{}
	var verts []Vec3
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "vertex":
			verts = append(verts, Vec3{parseFloat(fields[1]), parseFloat(fields[2]), parseFloat(fields[3])})
			if len(verts) == 3 {
				mesh.Triangles = append(mesh.Triangles, Triangle{verts[0], verts[1], verts[2]})
				verts = verts[:0]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// ImportOBJ reads the "v x y z" / "f i j k" subset of Wavefront OBJ
// (1-based vertex indices, triangulated faces only).
func ImportOBJ(path string) (*Mesh, error) {
	f, sc, err := openScanner(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var verts []Vec3
	mesh := &Mesh{}
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			verts = append(verts, Vec3{parseFloat(fields[1]), parseFloat(fields[2]), parseFloat(fields[3])})
		case "f":
			if len(fields) < 4 {
				continue
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				tok = strings.SplitN(tok, "/", 2)[0]
				i, err := strconv.Atoi(tok)
				if err != nil {
					chk.Panic("geometry: malformed face index %q", tok)
				}
				idx = append(idx, i-1)
			}
			for k := 1; k+1 < len(idx); k++ {
				mesh.Triangles = append(mesh.Triangles, Triangle{verts[idx[0]], verts[idx[k]], verts[idx[k+1]]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// ImportPLY reads the ASCII PLY subset (header with "element vertex N",
// "element face N", "property float x/y/z", then N vertex lines and N
// "3 i j k" face lines).
func ImportPLY(path string) (*Mesh, error) {
	f, sc, err := openScanner(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nVerts, nFaces int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "element" && fields[1] == "vertex" {
			nVerts, _ = strconv.Atoi(fields[2])
		}
		if len(fields) >= 3 && fields[0] == "element" && fields[1] == "face" {
			nFaces, _ = strconv.Atoi(fields[2])
		}
		if line == "end_header" {
			break
		}
	}

	verts := make([]Vec3, 0, nVerts)
	for i := 0; i < nVerts && sc.Scan(); i++ {
		fields := strings.Fields(sc.Text())
		verts = append(verts, Vec3{parseFloat(fields[0]), parseFloat(fields[1]), parseFloat(fields[2])})
	}

	mesh := &Mesh{}
	for i := 0; i < nFaces && sc.Scan(); i++ {
		fields := strings.Fields(sc.Text())
		n, _ := strconv.Atoi(fields[0])
		idx := make([]int, n)
		for j := 0; j < n; j++ {
			idx[j], _ = strconv.Atoi(fields[1+j])
		}
		for k := 1; k+1 < n; k++ {
			mesh.Triangles = append(mesh.Triangles, Triangle{verts[idx[0]], verts[idx[k]], verts[idx[k+1]]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}
