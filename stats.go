package g3d

import "fmt"

// Stats counts what happened to the geometry of one frame.
type Stats struct {
	Frame         uint64
	Triangles     int // triangles submitted
	Discarded     int // entirely behind the near plane
	Split         int // one vertex behind: emitted as two triangles
	Trimmed       int // two vertices behind: emitted as one smaller triangle
	PixelsShaded  int // fragments that passed the depth test
	DepthRejected int // fragments hidden by nearer geometry
}

func (s Stats) String() string {
	return fmt.Sprintf("frame=%d tris=%d discarded=%d split=%d trimmed=%d shaded=%d rejected=%d",
		s.Frame, s.Triangles, s.Discarded, s.Split, s.Trimmed, s.PixelsShaded, s.DepthRejected)
}
