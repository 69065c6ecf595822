package choose

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"gonum.org/v1/gonum/stat/combin"
)

func TestEndpoints(t *testing.T) {
	is := is.New(t)
	for n := 0; n <= MaxN; n++ {
		is.Equal(MustChoose(n, 0), uint32(1))
		is.Equal(MustChoose(n, n), uint32(1))
	}
}

func TestPascalRecurrence(t *testing.T) {
	is := is.New(t)
	for n := 2; n <= MaxN; n++ {
		for k := 1; k < n; k++ {
			is.Equal(MustChoose(n, k), MustChoose(n-1, k-1)+MustChoose(n-1, k))
		}
	}
}

func TestAgainstGonum(t *testing.T) {
	is := is.New(t)
	for n := 0; n <= MaxN; n++ {
		for k := 0; k <= n; k++ {
			is.Equal(uint64(MustChoose(n, k)), uint64(combin.Binomial(n, k)))
		}
	}
}

func TestKAboveN(t *testing.T) {
	is := is.New(t)
	c, err := Choose(3, 4)
	is.NoErr(err)
	is.Equal(c, uint32(0))
	is.Equal(MustChoose(24, 25), uint32(0))
}

func TestKnownValues(t *testing.T) {
	is := is.New(t)
	is.Equal(MustChoose(25, 4), uint32(12650))
	is.Equal(MustChoose(25, 8), uint32(1081575))
	is.Equal(MustChoose(31, 15), uint32(300540195))
}

func TestOutOfRange(t *testing.T) {
	is := is.New(t)
	for _, c := range [][2]int{{32, 1}, {-1, 0}, {5, -1}, {31, 32}} {
		_, err := Choose(c[0], c[1])
		is.True(errors.Is(err, ErrOutOfRange))
	}

	defer func() {
		is.True(recover() != nil)
	}()
	MustChoose(40, 2)
}
