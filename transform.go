package surfacetexture

import "github.com/gogpu/surfacetexture/buffer"

// computeTransformMatrix derives the sampling matrix a downstream renderer
// applies to unit-square UV coordinates before sampling the bound texture,
// from the crop rectangle, orientation flags, and buffer dimensions of the
// frame that produced it.
//
// The composition order is: build an orientation matrix from flags, build a
// crop/scale/translate matrix from crop, multiply crop*orientation, then
// premultiply by a fixed vertical flip to account for the buffer's
// top-to-bottom row order versus the texture-sampling coordinate
// convention's bottom-to-top V axis.
func computeTransformMatrix(crop buffer.Rect, flags buffer.TransformFlags, width, height int) Matrix4 {
	xform := Identity4
	if flags&buffer.FlipH != 0 {
		var next Matrix4
		MulMatrix4(&next, &xform, &FlipH4)
		xform = next
	}
	if flags&buffer.FlipV != 0 {
		var next Matrix4
		MulMatrix4(&next, &xform, &FlipV4)
		xform = next
	}
	if flags&buffer.Rot90 != 0 {
		var next Matrix4
		MulMatrix4(&next, &xform, &Rot90Matrix4)
		xform = next
	}

	var tx, ty, sx, sy float32
	if crop.Empty() || width <= 0 || height <= 0 {
		tx, ty, sx, sy = 0, 0, 1, 1
	} else {
		w, h := float32(width), float32(height)
		var xshrink, yshrink float32

		if crop.Left > 0 {
			tx = float32(crop.Left+1) / w
			xshrink++
		} else {
			tx = 0
		}
		if crop.Right < width {
			xshrink++
		}

		if crop.Bottom < height {
			ty = (float32(height-crop.Bottom) + 1) / h
			yshrink++
		} else {
			ty = 0
		}
		if crop.Top > 0 {
			yshrink++
		}

		sx = (float32(crop.Width()) - xshrink) / w
		sy = (float32(crop.Height()) - yshrink) / h
	}

	cropMtx := Matrix4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		tx, ty, 0, 1,
	}

	var beforeFlipV Matrix4
	MulMatrix4(&beforeFlipV, &cropMtx, &xform)

	var final Matrix4
	MulMatrix4(&final, &FlipV4, &beforeFlipV)
	return final
}
