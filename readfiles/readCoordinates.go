package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gopanel/geometry2D"
)

// ReadCoordinates reads one element's boundary walk from a two-column,
// comma-separated coordinate file with no header. The walk should traverse
// the boundary once; first and last point need not coincide. N+1 points
// yield N panels downstream.
func ReadCoordinates(filename string, verbose bool) (points []geometry2D.Point, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading coordinate file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open file %s\n %s", filename, err)
		return
	}
	defer file.Close()

	var (
		scanner = bufio.NewScanner(file)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			err = fmt.Errorf("%s:%d: expected two comma-separated columns, have %d", filename, lineNo, len(fields))
			return
		}
		var x, y float64
		if x, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64); err != nil {
			err = fmt.Errorf("%s:%d: %s", filename, lineNo, err)
			return
		}
		if y, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64); err != nil {
			err = fmt.Errorf("%s:%d: %s", filename, lineNo, err)
			return
		}
		points = append(points, geometry2D.Point{X: x, Y: y})
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(points) < 3 {
		err = fmt.Errorf("%s: boundary walk needs at least 3 points, have %d", filename, len(points))
		return
	}
	if verbose {
		var (
			xmin, xmax = points[0].X, points[0].X
			ymin, ymax = points[0].Y, points[0].Y
		)
		for _, p := range points {
			if p.X < xmin {
				xmin = p.X
			}
			if p.X > xmax {
				xmax = p.X
			}
			if p.Y < ymin {
				ymin = p.Y
			}
			if p.Y > ymax {
				ymax = p.Y
			}
		}
		fmt.Printf("Read %d points\nBounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\n",
			len(points), xmin, xmax, ymin, ymax)
	}
	return
}
