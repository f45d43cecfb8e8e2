package stripfx

import "math"

func initWipe(s *Strip) {
	s.Params = &WipeParams{}
}

// wipeZone is the per-render geometry of a wipe.
type wipeZone struct {
	angle      float32 // tangent of |Angle|
	flip       bool
	xo, yo     int
	width      int
	pythAngle  float32
	clockWidth float32
	typ        WipeType
	forward    bool
}

func newWipeZone(p *WipeParams, width, height int) wipeZone {
	tan := float32(math.Tan(math.Abs(float64(p.Angle))))
	return wipeZone{
		angle:      tan,
		flip:       p.Angle < 0,
		xo:         width,
		yo:         height,
		width:      int(p.EdgeWidth * (float32(width+height) / 2)),
		pythAngle:  1 / float32(math.Sqrt(float64(tan*tan+1))),
		clockWidth: p.EdgeWidth * math.Pi,
		typ:        p.Type,
		forward:    p.Forward,
	}
}

// inBand is the coverage of a point dist away from an edge softened over
// width. side selects the side of the edge.
func inBand(width, dist float32, side bool) float32 {
	if width == 0 || width < dist {
		if side {
			return 1
		}
		return 0
	}
	if side {
		return (dist + 0.5*width) / width
	}
	return (0.5*width - dist) / width
}

// coverage returns the weight of input 1 at pixel (x, y), in [0, 1].
func (z *wipeZone) coverage(x, y int, fac float32) float32 {
	xo, yo := z.xo, z.yo
	halfx, halfy := float32(xo)*0.5, float32(yo)*0.5
	if z.flip {
		x = xo - x
	}
	fx, fy := float32(x), float32(y)
	angle := z.angle

	var posx, posy float32
	if z.forward {
		posx, posy = fac*float32(xo), fac*float32(yo)
	} else {
		posx, posy = float32(xo)-fac*float32(xo), float32(yo)-fac*float32(yo)
	}

	var output float32
	switch z.typ {
	case WipeSingle:
		width := min(z.width, int(fac*float32(yo)))
		width = min(width, int(float32(yo)-fac*float32(yo)))

		var b1, b2, hyp float32
		if angle == 0 {
			b1, b2 = posy, fy
			hyp = abs32(fy - posy)
		} else {
			b1 = posy + angle*posx
			b2 = fy + angle*fx
			hyp = abs32(angle*fx+fy-posy-angle*posx) * z.pythAngle
		}
		if angle < 0 {
			b1, b2 = b2, b1
		}
		before := b1 < b2
		if !z.forward {
			before = !before
		}
		output = inBand(float32(width), hyp, before)

	case WipeDouble:
		if !z.forward {
			fac = 1 - fac
		}
		hwidth := float32(z.width) * 0.5
		var b1, b2, b3, hyp, hyp2 float32
		if angle == 0 {
			b1 = posy * 0.5
			b3 = float32(yo) - posy*0.5
			b2 = fy
			hyp = abs32(fy - posy*0.5)
			hyp2 = abs32(fy - (float32(yo) - posy*0.5))
		} else {
			b1 = posy*0.5 + angle*posx*0.5
			b3 = (float32(yo) - posy*0.5) + angle*(float32(xo)-posx*0.5)
			b2 = fy + angle*fx
			hyp = abs32(angle*fx+fy-posy*0.5-angle*posx*0.5) * z.pythAngle
			hyp2 = abs32(angle*fx+fy-(float32(yo)-posy*0.5)-angle*(float32(xo)-posx*0.5)) * z.pythAngle
		}
		hwidth = min(hwidth, abs32(b3-b1)/2)

		switch {
		case b2 < b1 && b2 < b3:
			output = inBand(hwidth, hyp, false)
		case b2 > b1 && b2 > b3:
			output = inBand(hwidth, hyp2, false)
		case hyp < hwidth && hyp2 > hwidth:
			output = inBand(hwidth, hyp, true)
		case hyp > hwidth && hyp2 < hwidth:
			output = inBand(hwidth, hyp2, true)
		default:
			output = inBand(hwidth, hyp2, true) * inBand(hwidth, hyp, true)
		}
		if !z.forward {
			output = 1 - output
		}

	case WipeClock:
		const twoPi = 2 * math.Pi
		widthf := z.clockWidth
		hand := twoPi * fac
		if z.forward {
			hand = twoPi - hand
		}
		cx, cy := fx-halfx, fy-halfy
		theta := float32(math.Atan2(float64(cy), float64(cx)))
		if theta < 0 {
			theta += twoPi
		}
		var low, high float32
		if z.forward {
			low, high = hand-widthf*fac, hand+widthf*(1-fac)
		} else {
			low, high = hand-widthf*(1-fac), hand+widthf*fac
		}
		low = max(low, 0)
		high = min(high, twoPi)

		switch {
		case theta < low:
			output = 0
		case theta > high:
			output = 1
		default:
			output = (theta - low) / (high - low)
		}
		if (cx == 0 && cy == 0) || output != output {
			output = 1
		}
		if z.forward {
			output = 1 - output
		}

	case WipeIris:
		if !z.forward {
			fac = 1 - fac
		}
		hwidth := float32(z.width) * 0.5
		r := halfx - halfx*fac
		pointDist := float32(math.Hypot(float64(r), float64(r)))
		d := float32(math.Hypot(float64(halfx-fx), float64(halfy-fy)))
		output = inBand(hwidth, abs32(d-pointDist), d <= pointDist)
		if !z.forward {
			output = 1 - output
		}
	}
	return min(max(output, 0), 1)
}

// executeWipe reveals input 1 over input 2 along the wipe geometry.
// Missing inputs read as opaque black.
func executeWipe(e *Engine, j *Job) (*Image, error) {
	out, err := e.output(j)
	if err != nil {
		return nil, err
	}
	z := newWipeZone(j.Strip.Params.(*WipeParams), out.Width, out.Height)
	dst := pixels{out}
	e.pool.ForRows(out.Height, defaultGrain, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range out.Width {
				i := (y*out.Width + x) * 4
				check := z.coverage(x, y, j.Fac)
				switch {
				case check == 0 && j.In2 != nil:
					dst.copyPixel(j.In2, i)
				case check == 0 || j.In1 == nil:
					dst.storeOpaqueBlack(i)
				default:
					c1 := pixels{j.In1}.load(i)
					c2 := opaqueBlack
					if j.In2 != nil {
						c2 = pixels{j.In2}.load(i)
					}
					dst.store(i, c1.Scale(check).Add(c2.Scale(1-check)))
				}
			}
		}
	})
	return out, nil
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
