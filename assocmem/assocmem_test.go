package assocmem_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

func randomHV(mode hypervector.Mode, dim int, rng *rand.Rand) *hypervector.HV {
	v := hypervector.NewUninitialized(mode, dim)
	for i := 0; i < dim; i++ {
		if mode == hypervector.ModeBinary {
			v.Set(i, rng.Intn(2))
		} else if rng.Intn(2) == 0 {
			v.Set(i, -1)
		} else {
			v.Set(i, 1)
		}
	}
	return v
}

func TestBinaryAddOverwritesAndSetsCountOne(t *testing.T) {
	mem, err := assocmem.New(2, 16, hypervector.ModeBinary, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	a := randomHV(hypervector.ModeBinary, 16, rng)
	accepted, err := mem.Add(a, 0)
	require.NoError(t, err)
	assert.True(t, accepted)
	cnt, err := mem.Count(0)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	b := randomHV(hypervector.ModeBinary, 16, rng)
	accepted, err = mem.Add(b, 0)
	require.NoError(t, err)
	assert.True(t, accepted)
	cnt, err = mem.Count(0)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt) // overwritten, not accumulated

	v, err := mem.GetClassVector(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(b))
}

func TestBipolarAddAdoptsFirstSampleThenThresholds(t *testing.T) {
	mem, err := assocmem.New(1, 32, hypervector.ModeBipolar, 0.5)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	a := randomHV(hypervector.ModeBipolar, 32, rng)
	accepted, err := mem.Add(a, 0)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = mem.Add(a, 0) // identical vector, sim=1.0 >= threshold
	require.NoError(t, err)
	assert.False(t, accepted)

	cnt, err := mem.Count(0)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func TestClassifyBreaksTiesTowardLowestIndex(t *testing.T) {
	mem, err := assocmem.New(3, 8, hypervector.ModeBinary, 0)
	require.NoError(t, err)

	v := hypervector.New(hypervector.ModeBinary, 8)
	for i := 0; i < 8; i++ {
		v.Set(i, 1)
	}
	_, err = mem.Add(v, 0)
	require.NoError(t, err)
	_, err = mem.Add(v, 1)
	require.NoError(t, err)

	got, err := mem.Classify(v)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestClassifyOnEmptyReturnsError(t *testing.T) {
	mem, err := assocmem.New(2, 8, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	v := hypervector.New(hypervector.ModeBinary, 8)
	_, err = mem.Classify(v)
	assert.ErrorIs(t, err, assocmem.ErrEmpty)
}

func TestNormalizeDividesByCount(t *testing.T) {
	mem, err := assocmem.New(1, 4, hypervector.ModeBipolar, 2.0) // generous threshold: always bundle
	require.NoError(t, err)

	a := hypervector.New(hypervector.ModeBipolar, 4)
	for i := 0; i < 4; i++ {
		a.Set(i, 1)
	}
	b := a.Clone()

	_, err = mem.Add(a, 0)
	require.NoError(t, err)
	_, err = mem.Add(b, 0)
	require.NoError(t, err)

	v, err := mem.GetClassVector(0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, v.At(i))
	}

	require.NoError(t, mem.Normalize())
	v, err = mem.GetClassVector(0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, v.At(i))
	}
}

func TestNormalizeRejectsBinaryMode(t *testing.T) {
	mem, err := assocmem.New(1, 4, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, mem.Normalize(), assocmem.ErrNormalizeBinaryMode)
}

func bipolarHV(values ...int) *hypervector.HV {
	v := hypervector.NewUninitialized(hypervector.ModeBipolar, len(values))
	for i, val := range values {
		v.Set(i, val)
	}
	return v
}

func TestIdentityBundleAndClassifyBipolar(t *testing.T) {
	mem, err := assocmem.New(2, 8, hypervector.ModeBipolar, 0.9)
	require.NoError(t, err)

	classA := bipolarHV(1, 1, 1, 1, -1, -1, -1, -1)
	classB := bipolarHV(-1, -1, -1, -1, 1, 1, 1, 1)
	_, err = mem.Add(classA, 0)
	require.NoError(t, err)
	_, err = mem.Add(classB, 1)
	require.NoError(t, err)

	cls, confidence, err := mem.ClassifyWithConfidence(bipolarHV(1, 1, 1, 1, -1, -1, -1, -1))
	require.NoError(t, err)
	assert.Equal(t, 0, cls)
	assert.InDelta(t, 1.0, confidence, 1e-9)
}

func TestSetClassVectorForBulkBinaryPath(t *testing.T) {
	mem, err := assocmem.New(1, 8, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	v := hypervector.New(hypervector.ModeBinary, 8)
	require.NoError(t, mem.SetClassVector(0, v, 7))
	cnt, err := mem.Count(0)
	require.NoError(t, err)
	assert.Equal(t, 7, cnt)
}
