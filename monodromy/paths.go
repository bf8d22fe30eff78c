package monodromy

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/riemann/cpath"
)

// collinearTol decides when an obstacle center counts as lying on the
// sight-line itself; such obstacles are always passed on the
// counterclockwise side.
const collinearTol = 1e-12

// obstacle is one branch disk clipped by a straight sight-line.
type obstacle struct {
	node  int     // index into Graph.Nodes
	proj  float64 // projection of the disk center onto the line, from the start
	cross float64 // signed perpendicular offset of the center (ccw positive)
}

// obstaclesOn lists the branch disks clipped by the open segment from a
// to b, ordered by distance from a. Disks whose node index is skipA or
// skipB are ignored (the endpoints' own disks).
func (g *Graph) obstaclesOn(a, b complex128, skipA, skipB int) []obstacle {
	dir := b - a
	length := cmplx.Abs(dir)
	if length == 0 {
		return nil
	}
	u := dir / complex(length, 0)

	var obs []obstacle
	for j := range g.Nodes {
		if j == skipA || j == skipB || g.Nodes[j].Infinity {
			continue
		}
		rel := (g.Nodes[j].Value - a) / u
		proj, cross := real(rel), imag(rel)
		if proj <= 0 || proj >= length {
			continue
		}
		if math.Abs(cross) >= g.Nodes[j].Radius {
			continue
		}
		obs = append(obs, obstacle{node: j, proj: proj, cross: cross})
	}
	sort.Slice(obs, func(i, k int) bool { return obs[i].proj < obs[k].proj })
	return obs
}

// detour connects a to b with straight runs, replacing each crossing of
// an obstacle disk by an arc along that disk's boundary. Obstacles
// centered on the line are passed counterclockwise of the travel
// direction; off-line obstacles are passed on the side away from their
// center.
func (g *Graph) detour(a, b complex128, skipA, skipB int) []cpath.Segment {
	u := (b - a) / complex(cmplx.Abs(b-a), 0)
	var segs []cpath.Segment
	cur := a
	for _, o := range g.obstaclesOn(a, b, skipA, skipB) {
		c := g.Nodes[o.node].Value
		rho := g.Nodes[o.node].Radius
		half := math.Sqrt(rho*rho - o.cross*o.cross)
		zin := a + u*complex(o.proj-half, 0)
		zout := a + u*complex(o.proj+half, 0)

		side := 1.0
		if math.Abs(o.cross) > collinearTol*rho {
			side = -math.Copysign(1, o.cross)
		}
		if cmplx.Abs(zin-cur) > 0 {
			segs = append(segs, cpath.Line(cur, zin))
		}
		segs = append(segs, arcVia(c, rho, zin, zout, u, a, side))
		cur = zout
	}
	if cmplx.Abs(b-cur) > 0 {
		segs = append(segs, cpath.Line(cur, b))
	}
	return segs
}

// arcVia returns the arc of the circle (c, rho) from zin to zout whose
// midpoint lies on the requested side of the sight-line through origin
// with direction u (side +1 = counterclockwise of travel).
func arcVia(c complex128, rho float64, zin, zout, u, origin complex128, side float64) cpath.Segment {
	th0 := cmplx.Phase(zin - c)
	th1 := cmplx.Phase(zout - c)
	d := math.Mod(th1-th0, 2*math.Pi)
	if d <= 0 {
		d += 2 * math.Pi // counterclockwise candidate in (0, 2π]
	}
	for _, sweep := range []float64{d, d - 2*math.Pi} {
		mid := c + cmplx.Rect(rho, th0+sweep/2)
		if math.Copysign(1, imag((mid-origin)/u)) == side {
			return cpath.Arc(c, rho, th0, sweep)
		}
	}
	// Both midpoints on one side can only happen for a degenerate
	// tangent crossing; the short arc is then correct.
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return cpath.Arc(c, rho, th0, d)
}

// PathAroundNode builds the loop encircling node k exactly |winding|
// times, counterclockwise for winding > 0 and clockwise for winding <
// 0. The loop starts and ends at the base point, approaches along the
// sight-line with detours around intervening branch disks, and returns
// along the same corridor. A zero winding yields an empty path.
func (g *Graph) PathAroundNode(k, winding int) (cpath.Path, error) {
	if k < 0 || k >= len(g.Nodes) {
		return nil, fmt.Errorf("monodromy: node %d out of range [0,%d)", k, len(g.Nodes))
	}
	if g.Nodes[k].Infinity {
		return g.PathAroundInfinity(winding), nil
	}
	if winding == 0 {
		return nil, nil
	}

	target := g.Nodes[k]
	u := (target.Value - g.BasePoint) / complex(cmplx.Abs(target.Value-g.BasePoint), 0)
	entry := target.Value - u*complex(target.Radius, 0)

	approach := cpath.Path(g.detour(g.BasePoint, entry, -1, k))

	sgn := 1.0
	if winding < 0 {
		sgn = -1
	}
	thEntry := cmplx.Phase(entry - target.Value)
	loop := make(cpath.Path, 0, 2*abs(winding))
	for i := 0; i < 2*abs(winding); i++ {
		loop = append(loop, cpath.Arc(target.Value, target.Radius, thEntry+sgn*float64(i)*math.Pi, sgn*math.Pi))
	}

	full := make(cpath.Path, 0, 2*len(approach)+len(loop))
	full = append(full, approach...)
	full = append(full, loop...)
	full = append(full, approach.Reverse()...)
	return full, nil
}

// PathAroundInfinity builds the loop encircling x = ∞ exactly |winding|
// times, counterclockwise around infinity for winding > 0. Around
// infinity means clockwise on a circle enclosing every finite branch
// point; the circle is entered at its leftmost point via the real-axis
// direction from the base point. A zero winding yields an empty path.
func (g *Graph) PathAroundInfinity(winding int) cpath.Path {
	if winding == 0 {
		return nil
	}
	R := g.outerRadius()
	entry := complex(-R, 0)

	var approach cpath.Path
	if cmplx.Abs(entry-g.BasePoint) > 0 {
		approach = cpath.Path(g.detour(g.BasePoint, entry, -1, -1))
	}

	// Counterclockwise around ∞ is clockwise in the finite plane.
	sgn := -1.0
	if winding < 0 {
		sgn = 1
	}
	loop := make(cpath.Path, 0, 2*abs(winding))
	for i := 0; i < 2*abs(winding); i++ {
		loop = append(loop, cpath.Arc(0, R, math.Pi+sgn*float64(i)*math.Pi, sgn*math.Pi))
	}

	full := make(cpath.Path, 0, 2*len(approach)+len(loop))
	full = append(full, approach...)
	full = append(full, loop...)
	full = append(full, approach.Reverse()...)
	return full
}

// outerRadius returns the radius of the circle used by
// PathAroundInfinity: twice the farthest extent of the branch points
// and the base point, with a floor of 1.
func (g *Graph) outerRadius() float64 {
	r := cmplx.Abs(g.BasePoint)
	for _, n := range g.Nodes {
		if n.Infinity {
			continue
		}
		if d := cmplx.Abs(n.Value) + n.Radius; d > r {
			r = d
		}
	}
	if r < 0.5 {
		r = 0.5
	}
	return 2 * r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
