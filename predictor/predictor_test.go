package predictor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cds-lab/szgo/ndrange"
	"github.com/cds-lab/szgo/predictor"
)

func TestIdentityAlwaysPredictsZero(t *testing.T) {
	p := predictor.NewIdentity[float64]()
	data := []float64{1, 2, 3, 4}
	r := ndrange.NewRange(data, []int{4}, 1, 0)
	it := r.Begin()
	it.Next()

	assert.Equal(t, 0.0, p.Predict(it))
}

// TestLorenzo1D checks the 1-D case reduces to predict = prev(1).
func TestLorenzo1D(t *testing.T) {
	data := []float64{10, 20, 30, 40}
	r := ndrange.NewRange(data, []int{4}, 1, 0)
	r.SetStartingPosition([]int{0})

	p := predictor.NewLorenzo[float64]()
	p.PrecompressBlock(r)

	it := r.Begin()
	it.Next() // position 1, neighbor(1) = data[0] = 10
	assert.Equal(t, 10.0, p.Predict(it))
}

// TestLorenzo2D checks the classic left + up - upleft recurrence.
func TestLorenzo2D(t *testing.T) {
	shape := []int{3, 3}
	data := make([]float64, 9)
	for i := range data {
		data[i] = float64(i)
	}
	r := ndrange.NewRange(data, shape, 1, 0)
	r.SetStartingPosition([]int{0, 0})

	p := predictor.NewLorenzo[float64]()
	p.PrecompressBlock(r)

	it := r.Begin()
	it.Next() // (0,1)
	it.Next() // (0,2)
	it.Next() // (1,0)
	it.Next() // (1,1): left=data[3]=3, up=data[1]=1, upleft=data[0]=0
	assert.Equal(t, []int{1, 1}, it.Index())
	assert.Equal(t, 3.0+1.0-0.0, p.Predict(it))
}

// TestLorenzoEdgeDegradesToZero checks that corners reaching past the
// global origin contribute zero rather than reading out of bounds.
func TestLorenzoEdgeDegradesToZero(t *testing.T) {
	data := []float64{5, 6, 7}
	r := ndrange.NewRange(data, []int{3}, 1, 0)
	r.SetStartingPosition([]int{0})

	p := predictor.NewLorenzo[float64]()
	p.PrecompressBlock(r)

	it := r.Begin() // position 0: prev(1) is out of bounds -> 0
	assert.Equal(t, 0.0, p.Predict(it))
}
