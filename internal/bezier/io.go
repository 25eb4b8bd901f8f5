package bezier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"roadstrip/internal/common"

	"github.com/golang/geo/r3"
)

// ReadGeometry fills the control points from a record of 16 points, row-major,
// each written in Y Z X order. It returns an error only when the stream runs
// out; numbers that fail to parse mark the patch malformed and reading goes
// on so the stream stays aligned with the next record.
func (p *Patch) ReadGeometry(src *common.TokenReader) error {
	p.malformed = false
	p.hasRacingLine = false
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var yzx [3]float64
			for k := range yzx {
				f, err := src.Float()
				if err != nil {
					var numErr *strconv.NumError
					if !errors.As(err, &numErr) {
						return fmt.Errorf("patch point %d,%d: %w", r, c, err)
					}
					p.malformed = true
					f = math.NaN()
				}
				yzx[k] = f
			}
			p.Points[r][c] = r3.Vector{X: yzx[2], Y: yzx[0], Z: yzx[1]}
		}
	}
	p.tessellate()
	return nil
}

// Write emits a geometry stream: the patch count followed by one record per
// patch in the layout ReadGeometry expects.
func Write(w io.Writer, patches ...*Patch) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(patches))
	for _, p := range patches {
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				pt := p.Points[r][c]
				fmt.Fprintf(bw, "%s %s %s\n", num(pt.Y), num(pt.Z), num(pt.X))
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
