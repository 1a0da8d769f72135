package svgimport

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/motionforge/svg2lottie/internal/domain"
)

// Options control how markup is imported.
type Options struct {
	// FitToCanvas applies the ContentBounds fill-scale heuristic to every
	// imported layer's static scale.
	FitToCanvas bool

	// Bounds is the assumed content box used when FitToCanvas is set.
	Bounds ContentBounds
}

// DefaultOptions returns importer options with the heuristic disabled and
// the reference content box.
func DefaultOptions() Options {
	return Options{Bounds: DefaultContentBounds()}
}

// cursor carries decoder state across elements.
type cursor struct {
	doc    *domain.Document
	opts   Options
	fills  []string
	sawSVG bool
}

type elementFunc func(c *cursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
}

// Import walks SVG markup and produces an animation document with one shape
// layer per drawable element. Groups only propagate their fill attribute;
// unknown elements are skipped.
func Import(markup string, opts Options) (*domain.Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, errors.New("empty svg document")
	}

	c := &cursor{
		doc:  &domain.Document{Name: "svg2lottie"},
		opts: opts,
		// SVG paints black when no fill is given.
		fills: []string{"black"},
	}

	decoder := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode svg: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			c.fills = append(c.fills, attrValue(t.Attr, "fill", c.currentFill()))
			if fn, ok := elementFuncs[t.Name.Local]; ok {
				if err := fn(c, t.Attr); err != nil {
					return nil, fmt.Errorf("element %s: %w", t.Name.Local, err)
				}
			}
		case xml.EndElement:
			if len(c.fills) > 1 {
				c.fills = c.fills[:len(c.fills)-1]
			}
		}
	}

	if !c.sawSVG {
		return nil, errors.New("markup has no svg root element")
	}
	return c.doc, nil
}

func (c *cursor) currentFill() string {
	return c.fills[len(c.fills)-1]
}

// newLayer creates the next shape layer in stacking order.
func (c *cursor) newLayer(kind string) *domain.ShapeLayer {
	index := len(c.doc.Layers) + 1
	return domain.NewShapeLayer(fmt.Sprintf("%s-%d", kind, index), index)
}

// finishLayer attaches the inherited fill and the optional fill-scale
// heuristic, then appends the layer to the document.
func (c *cursor) finishLayer(layer *domain.ShapeLayer) {
	if fill, ok := parseFill(c.currentFill()); ok {
		layer.AddShape(fill)
	}
	if c.opts.FitToCanvas {
		layer.Transform().Scale.SetStatic(c.opts.Bounds.FillScale(c.doc.Size()))
	}
	c.doc.Layers = append(c.doc.Layers, layer)
}

func svgF(c *cursor, attrs []xml.Attr) error {
	c.sawSVG = true

	var viewW, viewH, width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			points := parsePoints(attr.Value)
			if len(points) == 2 {
				viewW, viewH = points[1].X, points[1].Y
			}
		case "width":
			width, err = parseBasicFloat(attr.Value)
		case "height":
			height, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if viewW == 0 {
		viewW = width
	}
	if viewH == 0 {
		viewH = height
	}
	c.doc.Width = int(viewW)
	c.doc.Height = int(viewH)
	return nil
}

func rectF(c *cursor, attrs []xml.Attr) error {
	var x, y, w, h, rx float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseBasicFloat(attr.Value)
		case "y":
			y, err = parseBasicFloat(attr.Value)
		case "width":
			w, err = parseBasicFloat(attr.Value)
		case "height":
			h, err = parseBasicFloat(attr.Value)
		case "rx":
			rx, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	layer := c.newLayer("rect")
	layer.AddShape(domain.Rect{
		Center: domain.Point{X: x + w/2, Y: y + h/2},
		Size:   domain.Point{X: w, Y: h},
		Radius: rx,
	})
	c.finishLayer(layer)
	return nil
}

func circleF(c *cursor, attrs []xml.Attr) error {
	var cx, cy, r, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseBasicFloat(attr.Value)
		case "cy":
			cy, err = parseBasicFloat(attr.Value)
		case "r":
			r, err = parseBasicFloat(attr.Value)
		case "rx":
			rx, err = parseBasicFloat(attr.Value)
		case "ry":
			ry, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 {
		rx = r
	}
	if ry == 0 {
		ry = r
	}
	layer := c.newLayer("ellipse")
	layer.AddShape(domain.Ellipse{
		Center: domain.Point{X: cx, Y: cy},
		Size:   domain.Point{X: 2 * rx, Y: 2 * ry},
	})
	c.finishLayer(layer)
	return nil
}

func lineF(c *cursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseBasicFloat(attr.Value)
		case "y1":
			y1, err = parseBasicFloat(attr.Value)
		case "x2":
			x2, err = parseBasicFloat(attr.Value)
		case "y2":
			y2, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	layer := c.newLayer("line")
	layer.AddShape(domain.Path{
		Vertices:    []domain.Point{{X: x1, Y: y1}, {X: x2, Y: y2}},
		InTangents:  []domain.Point{{}, {}},
		OutTangents: []domain.Point{{}, {}},
	})
	c.finishLayer(layer)
	return nil
}

func polylineF(c *cursor, attrs []xml.Attr) error {
	return polyF(c, attrs, false)
}

func polygonF(c *cursor, attrs []xml.Attr) error {
	return polyF(c, attrs, true)
}

func polyF(c *cursor, attrs []xml.Attr, closed bool) error {
	var points []domain.Point
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			points = parsePoints(attr.Value)
		}
	}
	if len(points) < 2 {
		return nil
	}
	tangents := make([]domain.Point, len(points))
	layer := c.newLayer("poly")
	layer.AddShape(domain.Path{
		Vertices:    points,
		InTangents:  tangents,
		OutTangents: tangents,
		Closed:      closed,
	})
	c.finishLayer(layer)
	return nil
}

func pathF(c *cursor, attrs []xml.Attr) error {
	var d string
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			d = attr.Value
		}
	}
	paths := parsePathData(d)
	if len(paths) == 0 {
		return nil
	}
	layer := c.newLayer("path")
	for _, p := range paths {
		layer.AddShape(p)
	}
	c.finishLayer(layer)
	return nil
}

func attrValue(attrs []xml.Attr, name, fallback string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return fallback
}

// parseBasicFloat parses a numeric attribute, tolerating a px unit suffix.
func parseBasicFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parsePoints parses whitespace or comma separated coordinates into pairs.
// A trailing unpaired coordinate is dropped.
func parsePoints(s string) []domain.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	points := make([]domain.Point, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil
		}
		points = append(points, domain.Point{X: x, Y: y})
	}
	return points
}
