package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCoordinates(t *testing.T) {
	write := func(contents string) (filename string) {
		filename = filepath.Join(t.TempDir(), "coords.csv")
		assert.NoError(t, os.WriteFile(filename, []byte(contents), 0644))
		return
	}
	// Two comma-separated columns, no header, blank lines ignored
	{
		points, err := ReadCoordinates(write("1.0,0.0\n0.5, 0.1\n\n0.0,0.0\n0.5,-0.1\n1.0,0.0\n"), false)
		assert.NoError(t, err)
		assert.Equal(t, 5, len(points))
		assert.Equal(t, 0.5, points[1].X)
		assert.Equal(t, 0.1, points[1].Y)
		assert.Equal(t, -0.1, points[3].Y)
	}
	// Wrong column count
	{
		_, err := ReadCoordinates(write("1.0,0.0,3.0\n0.5,0.1\n0.0,0.0\n"), false)
		assert.Error(t, err)
	}
	// Non-numeric field
	{
		_, err := ReadCoordinates(write("1.0,0.0\nx,0.1\n0.0,0.0\n"), false)
		assert.Error(t, err)
	}
	// Too few points for a boundary walk
	{
		_, err := ReadCoordinates(write("1.0,0.0\n0.0,0.0\n"), false)
		assert.Error(t, err)
	}
	// Missing file
	{
		_, err := ReadCoordinates(filepath.Join(t.TempDir(), "missing.csv"), false)
		assert.Error(t, err)
	}
}
