package diorama

// Affine transforms are stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// worldExtentY is the fixed vertical half-extent of the camera in world
// units. The horizontal half-extent scales with the viewport aspect ratio,
// so a world unit is always the same number of pixels on both axes.
const worldExtentY = 2.0

// buildProjection returns the shared world→screen affine for a viewport.
// World space is Y-up with the camera centered on the origin; the visible
// vertical range is [-worldExtentY, worldExtentY]. Pure function of the
// viewport size, so equal inputs give bit-identical matrices.
func buildProjection(width, height int) [6]float64 {
	px := float64(height) / (2 * worldExtentY) // pixels per world unit
	return [6]float64{px, 0, 0, -px, float64(width) / 2, float64(height) / 2}
}

// modelTransform returns the sprite's local→world affine. The sprite quad
// spans [-1, 1] on both axes in local space, scaled then translated.
func modelTransform(o SpriteObject) [6]float64 {
	return [6]float64{o.Scale.X, 0, 0, o.Scale.Y, o.Position.X, o.Position.Y}
}

// resolveTransform composes the shared projection with a sprite's model
// transform, yielding the screen-space affine stored on its registry entry.
func resolveTransform(proj [6]float64, o SpriteObject) [6]float64 {
	return multiplyAffine(proj, modelTransform(o))
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
