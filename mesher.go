package voxl

// Greedy meshing based on the JavaScript code from
// https://0fps.net/2012/07/07/meshing-minecraft-part-2/

// Mesher sweeps a padded voxel grid along the three axes and merges
// coplanar same-material cell boundaries into the largest possible
// rectangles. The scratch mask is owned by the instance and reused
// between calls, so a Mesher is not safe for concurrent use.
type Mesher struct {
	du, dv, q, x [3]int
	m            []int
	dx, dy       int
	dims         [3]int
	singleOpaque bool
}

// NewMesher returns a mesher for grids of the given interior extents.
// Extents must be in [1,256] per axis.
func NewMesher(dx, dy, dz int) *Mesher {
	checkDim("dx", dx)
	checkDim("dy", dy)
	checkDim("dz", dz)
	return &Mesher{
		m:    make([]int, max(dx, dy)*max(dy, dz)),
		dx:   dx,
		dy:   dy,
		dims: [3]int{dx, dy, dz},
	}
}

// SetSingleOpaque controls material handling during merging. When set,
// all nonzero cells merge as a single material; otherwise only equal
// material ids merge.
func (m *Mesher) SetSingleOpaque(singleOpaque bool) { m.singleOpaque = singleOpaque }

// SingleOpaque reports whether materials are collapsed for merging.
func (m *Mesher) SingleOpaque() bool { return m.singleOpaque }

func (m *Mesher) at(vs []byte, x, y, z int) byte {
	return vs[x+1+(m.dx+2)*(y+1+(m.dy+2)*(z+1))]
}

// Mesh appends the merged faces of the padded grid vs to faces and
// returns the extended slice. vs must use the layout documented on
// Grid.Data. Faces are emitted per sweep axis, negative-to-positive.
func (m *Mesher) Mesh(vs []byte, faces []Face) []Face {
	for d := 0; d < 3; d++ {
		u, v := (d+1)%3, (d+2)%3
		m.q = [3]int{}
		m.q[d] = 1
		for m.x[d] = -1; m.x[d] < m.dims[d]; {
			m.generateMask(vs, d, u, v)
			m.x[d]++
			faces = m.mergeFaces(faces, u, v, d)
		}
	}
	return faces
}

// generateMask scans the two cell layers straddling the current slab
// and records which boundaries produce a face. Positive mask values
// face +d, negative face -d, zero is no face.
func (m *Mesher) generateMask(vs []byte, d, u, v int) {
	n := 0
	for m.x[v] = 0; m.x[v] < m.dims[v]; m.x[v]++ {
		for m.x[u] = 0; m.x[u] < m.dims[u]; m.x[u]++ {
			a := int(m.at(vs, m.x[0], m.x[1], m.x[2]))
			b := int(m.at(vs, m.x[0]+m.q[0], m.x[1]+m.q[1], m.x[2]+m.q[2]))
			switch {
			case (a == 0) == (b == 0):
				m.m[n] = 0
			case a != 0:
				if m.singleOpaque {
					m.m[n] = 1
				} else {
					m.m[n] = a
				}
			default:
				if m.singleOpaque {
					m.m[n] = -1
				} else {
					m.m[n] = -b
				}
			}
			n++
		}
	}
}

func (m *Mesher) mergeFaces(faces []Face, u, v, d int) []Face {
	for j, n := 0, 0; j < m.dims[v]; j++ {
		for i, incr := 0, 0; i < m.dims[u]; i, n = i+incr, n+incr {
			incr = 1
			if m.m[n] == 0 {
				continue
			}
			w := m.determineWidth(u, n, i, m.m[n])
			h := m.determineHeight(u, v, n, j, m.m[n], w)
			s := m.faceRegion(u, v, n, j, i, d, w, h)
			faces = append(faces, Face{
				U0: byte(m.x[u]),
				V0: byte(m.x[v]),
				U1: byte(m.x[u] + m.du[u] + m.dv[u]),
				V1: byte(m.x[v] + m.du[v] + m.dv[v]),
				P:  byte(m.x[d]),
				S:  byte(d<<1 + s),
			})
			m.eraseMask(u, n, w, h)
			incr = w
		}
	}
	return faces
}

// faceRegion sets up the in-plane span vectors for the next emitted
// face. The du/dv roles swap between sides so the winding derived by
// downstream vertex generation stays consistent.
func (m *Mesher) faceRegion(u, v, n, j, i, d, w, h int) int {
	m.x[u] = i
	m.x[v] = j
	if m.m[n] > 0 {
		m.du[d], m.dv[d], m.du[v], m.dv[u] = 0, 0, 0, 0
		m.du[u] = w
		m.dv[v] = h
		return 1
	}
	m.du[d], m.dv[d], m.du[u], m.dv[v] = 0, 0, 0, 0
	m.du[v] = h
	m.dv[u] = w
	return 0
}

func (m *Mesher) determineWidth(u, n, i, c int) int {
	w := 1
	for n+w < len(m.m) && i+w < m.dims[u] && c == m.m[n+w] {
		w++
	}
	return w
}

func (m *Mesher) determineHeight(u, v, n, j, c, w int) int {
	h := 1
	for ; j+h < m.dims[v]; h++ {
		for k := 0; k < w; k++ {
			if c != m.m[n+k+h*m.dims[u]] {
				return h
			}
		}
	}
	return h
}

func (m *Mesher) eraseMask(u, n, w, h int) {
	for l := 0; l < h; l++ {
		for k := 0; k < w; k++ {
			m.m[n+k+l*m.dims[u]] = 0
		}
	}
}
