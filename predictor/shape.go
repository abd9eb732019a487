package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/xerr"
)

// checkShape rejects cubes with a zero extent; predictors cannot fail
// on well-formed cubes, so this is the only validation they perform.
func checkShape(c *cube.Cube) (b, r, col int, err error) {
	b, r, col = c.Shape()
	if b <= 0 || r <= 0 || col <= 0 {
		return 0, 0, 0, xerr.Shape("predictor: cube has a zero extent (%d,%d,%d)", b, r, col)
	}
	return b, r, col, nil
}
