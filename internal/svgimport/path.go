package svgimport

import (
	"strconv"

	"github.com/motionforge/svg2lottie/internal/domain"
)

// parsePathData converts an SVG path "d" attribute into cubic bezier paths,
// one per subpath. Supported commands: M/m, L/l, H/h, V/v, C/c, Q/q, Z/z;
// quadratic segments are elevated to cubics. Parsing stops at the first
// unsupported command or malformed number and returns the subpaths
// collected so far.
func parsePathData(d string) []domain.Path {
	p := &pathParser{s: d}
	var paths []domain.Path
	var b *pathBuilder
	var cur, subStart domain.Point

	flush := func() {
		if b != nil && len(b.path.Vertices) > 1 {
			paths = append(paths, b.path)
		}
		b = nil
	}
	ensure := func() {
		if b == nil {
			b = newPathBuilder(cur)
			subStart = cur
		}
	}

loop:
	for {
		cmd, ok := p.command()
		if !ok {
			break
		}
		rel := cmd >= 'a' && cmd <= 'z'

		switch upperCmd(cmd) {
		case 'M':
			x, y, ok := p.pair()
			if !ok {
				break loop
			}
			flush()
			cur = resolve(rel, cur, x, y)
			subStart = cur
			b = newPathBuilder(cur)
			// Additional pairs after a moveto are implicit linetos.
			for p.hasNumber() {
				x, y, ok = p.pair()
				if !ok {
					break loop
				}
				cur = resolve(rel, cur, x, y)
				b.lineTo(cur)
			}

		case 'L':
			ensure()
			for p.hasNumber() {
				x, y, ok := p.pair()
				if !ok {
					break loop
				}
				cur = resolve(rel, cur, x, y)
				b.lineTo(cur)
			}

		case 'H':
			ensure()
			for p.hasNumber() {
				x, ok := p.number()
				if !ok {
					break loop
				}
				if rel {
					cur.X += x
				} else {
					cur.X = x
				}
				b.lineTo(cur)
			}

		case 'V':
			ensure()
			for p.hasNumber() {
				y, ok := p.number()
				if !ok {
					break loop
				}
				if rel {
					cur.Y += y
				} else {
					cur.Y = y
				}
				b.lineTo(cur)
			}

		case 'C':
			ensure()
			for p.hasNumber() {
				x1, y1, ok1 := p.pair()
				x2, y2, ok2 := p.pair()
				x, y, ok3 := p.pair()
				if !ok1 || !ok2 || !ok3 {
					break loop
				}
				c1 := resolve(rel, cur, x1, y1)
				c2 := resolve(rel, cur, x2, y2)
				end := resolve(rel, cur, x, y)
				b.curveTo(c1, c2, end)
				cur = end
			}

		case 'Q':
			ensure()
			for p.hasNumber() {
				qx, qy, ok1 := p.pair()
				x, y, ok2 := p.pair()
				if !ok1 || !ok2 {
					break loop
				}
				q := resolve(rel, cur, qx, qy)
				end := resolve(rel, cur, x, y)
				// Degree elevation: quadratic to cubic.
				c1 := domain.Point{X: cur.X + 2*(q.X-cur.X)/3, Y: cur.Y + 2*(q.Y-cur.Y)/3}
				c2 := domain.Point{X: end.X + 2*(q.X-end.X)/3, Y: end.Y + 2*(q.Y-end.Y)/3}
				b.curveTo(c1, c2, end)
				cur = end
			}

		case 'Z':
			if b != nil {
				b.path.Closed = true
			}
			cur = subStart
			flush()

		default:
			break loop
		}
	}
	flush()
	return paths
}

func upperCmd(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func resolve(rel bool, cur domain.Point, x, y float64) domain.Point {
	if rel {
		return domain.Point{X: cur.X + x, Y: cur.Y + y}
	}
	return domain.Point{X: x, Y: y}
}

// pathBuilder accumulates one subpath with parallel tangent slices.
type pathBuilder struct {
	path domain.Path
}

func newPathBuilder(start domain.Point) *pathBuilder {
	b := &pathBuilder{}
	b.append(start)
	return b
}

func (b *pathBuilder) append(v domain.Point) {
	b.path.Vertices = append(b.path.Vertices, v)
	b.path.InTangents = append(b.path.InTangents, domain.Point{})
	b.path.OutTangents = append(b.path.OutTangents, domain.Point{})
}

func (b *pathBuilder) lineTo(v domain.Point) {
	b.append(v)
}

// curveTo records a cubic segment; tangents are stored relative to their
// vertex, matching the Lottie bezier encoding.
func (b *pathBuilder) curveTo(c1, c2, end domain.Point) {
	last := len(b.path.Vertices) - 1
	from := b.path.Vertices[last]
	b.path.OutTangents[last] = domain.Point{X: c1.X - from.X, Y: c1.Y - from.Y}
	b.append(end)
	b.path.InTangents[len(b.path.Vertices)-1] = domain.Point{X: c2.X - end.X, Y: c2.Y - end.Y}
}

// pathParser scans command letters and numbers from path data.
type pathParser struct {
	s string
	i int
}

func (p *pathParser) skipSep() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\n', '\r', ',':
			p.i++
		default:
			return
		}
	}
}

func (p *pathParser) command() (byte, bool) {
	p.skipSep()
	if p.i >= len(p.s) {
		return 0, false
	}
	c := p.s[p.i]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		p.i++
		return c, true
	}
	return 0, false
}

func (p *pathParser) hasNumber() bool {
	p.skipSep()
	if p.i >= len(p.s) {
		return false
	}
	c := p.s[p.i]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (p *pathParser) number() (float64, bool) {
	p.skipSep()
	start := p.i
	for p.i < len(p.s) {
		c := p.s[p.i]
		switch {
		case c >= '0' && c <= '9', c == '.':
			p.i++
		case c == 'e' || c == 'E':
			p.i++
		case c == '-' || c == '+':
			// A sign is part of the number only at its start or right
			// after an exponent marker.
			if p.i == start || p.s[p.i-1] == 'e' || p.s[p.i-1] == 'E' {
				p.i++
			} else {
				goto done
			}
		default:
			goto done
		}
	}
done:
	if p.i == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.s[start:p.i], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *pathParser) pair() (float64, float64, bool) {
	x, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	y, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}
