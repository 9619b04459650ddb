package parsetree

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	charWidth = 7 // basicfont.Face7x13 advance
	boxPad    = 4
	boxHeight = 13 + 2*boxPad
	levelGap  = 40
	leafGap   = 10
	margin    = 16
)

var (
	background   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	edgeColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	nodeFill     = color.RGBA{0xe8, 0xee, 0xf8, 0xff}
	terminalFill = color.RGBA{0xfd, 0xf3, 0xd8, 0xff}
	epsilonFill  = color.RGBA{0xee, 0xee, 0xee, 0xff}
	borderColor  = color.RGBA{0x40, 0x40, 0x40, 0xff}
	textColor    = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

type box struct {
	n      *Node
	label  string
	parent int // index of the parent box, -1 for the root
	cx     int
	top    int
	w      int
}

type treeLayout struct {
	boxes         []box
	width, height int
}

// layoutTree gives each leaf its own column, left to right, and centres every
// other node over its first and last child.
func layoutTree(root *Node) *treeLayout {
	l := &treeLayout{}
	cursor := 0
	maxDepth := 0
	var place func(n *Node, parent, depth int) int
	place = func(n *Node, parent, depth int) int {
		w := utf8.RuneCountInString(n.Symbol)*charWidth + 2*boxPad
		i := len(l.boxes)
		l.boxes = append(l.boxes, box{
			n:      n,
			label:  n.Symbol,
			parent: parent,
			top:    margin + depth*(boxHeight+levelGap),
			w:      w,
		})
		maxDepth = max(maxDepth, depth)

		var cx int
		if n.IsLeaf() {
			cx = cursor + w/2
			cursor += w + leafGap
		} else {
			first := place(n.Children[0], i, depth+1)
			last := first
			for _, c := range n.Children[1:] {
				last = place(c, i, depth+1)
			}
			cx = (first + last) / 2
		}
		l.boxes[i].cx = cx
		return cx
	}
	place(root, -1, 0)

	left, right := math.MaxInt, math.MinInt
	for _, b := range l.boxes {
		left = min(left, b.cx-b.w/2)
		right = max(right, b.cx+b.w/2)
	}
	shift := margin - left
	for i := range l.boxes {
		l.boxes[i].cx += shift
	}
	l.width = right - left + 2*margin
	l.height = 2*margin + (maxDepth+1)*boxHeight + maxDepth*levelGap
	return l
}

// Render draws the tree under root as an image: one labelled box per node,
// tokens shaded apart from nonterminals, and a line from each node to its
// children.
func Render(root *Node) *image.RGBA {
	if root == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	l := layoutTree(root)
	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	edges := vector.NewRasterizer(l.width, l.height)
	edges.DrawOp = draw.Over
	for _, b := range l.boxes {
		if b.parent < 0 {
			continue
		}
		p := l.boxes[b.parent]
		addSegment(edges, float32(p.cx), float32(p.top+boxHeight), float32(b.cx), float32(b.top))
	}
	edges.Draw(img, img.Bounds(), image.NewUniform(edgeColor), image.Point{})

	d := &font.Drawer{Dst: img, Src: image.NewUniform(textColor), Face: basicfont.Face7x13}
	for _, b := range l.boxes {
		rect := image.Rect(b.cx-b.w/2, b.top, b.cx-b.w/2+b.w, b.top+boxHeight)
		fill := nodeFill
		switch {
		case b.n.Terminal:
			fill = terminalFill
		case b.n.Epsilon:
			fill = epsilonFill
		}
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
		outline(img, rect, borderColor)
		d.Dot = fixed.P(rect.Min.X+boxPad, rect.Min.Y+boxPad+basicfont.Face7x13.Ascent)
		d.DrawString(b.label)
	}
	return img
}

// RenderPNG writes Render(root) to w as a PNG image.
func RenderPNG(w io.Writer, root *Node) error {
	return png.Encode(w, Render(root))
}

// addSegment adds a thin quad from (x0,y0) to (x1,y1) to the rasterizer's
// path. All quads wind the same way, so overlaps do not cancel.
func addSegment(r *vector.Rasterizer, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*0.6, dx/length*0.6
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	u := image.NewUniform(c)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
