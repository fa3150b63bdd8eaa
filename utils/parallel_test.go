package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	// Buckets tile the index range exactly, imbalance at most one
	{
		for _, tc := range [][2]int{{4, 10}, {3, 9}, {7, 100}, {8, 8}} {
			pm := NewPartitionMap(tc[0], tc[1])
			covered := 0
			for n := 0; n < pm.ParallelDegree; n++ {
				kMin, kMax := pm.GetBucketRange(n)
				assert.Equal(t, covered, kMin)
				dim := pm.GetBucketDimension(n)
				assert.Equal(t, kMax-kMin, dim)
				assert.LessOrEqual(t, dim, tc[1]/tc[0]+1)
				assert.GreaterOrEqual(t, dim, tc[1]/tc[0])
				covered = kMax
			}
			assert.Equal(t, tc[1], covered)
		}
	}
	// Degree is clamped when there are fewer items than workers
	{
		pm := NewPartitionMap(16, 3)
		assert.Equal(t, 3, pm.ParallelDegree)
		pm = NewPartitionMap(0, 5)
		assert.Equal(t, 1, pm.ParallelDegree)
	}
}
