package trainer_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/cim"
	"github.com/marianhorn/HDC-Assymetric-CiM/encoder"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/trainer"
)

func buildEncoder(t *testing.T, mode hypervector.Mode, nGram int) *encoder.Encoder {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	im, err := itemmem.Random(3, 64, mode, rng)
	require.NoError(t, err)
	ladder, err := cim.NewUniform(6, 64, 64, mode, rng)
	require.NoError(t, err)
	enc, err := encoder.New(64, 3, 6, nGram, 0, 10, mode, encoder.WithIM(im, ladder))
	require.NoError(t, err)
	return enc
}

func syntheticDataset(t int, f int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, t)
	labels := make([]int, t)
	for i := 0; i < t; i++ {
		row := make([]float64, f)
		for j := range row {
			row[j] = rng.Float64() * 10
		}
		data[i] = row
		labels[i] = i / 5 % 2 // blocks of 5 samples per class, alternating
	}
	return data, labels
}

func TestTrainBipolarPopulatesAssocMem(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBipolar, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBipolar, 0.9)
	require.NoError(t, err)

	data, labels := syntheticDataset(40, 3, 9)
	require.NoError(t, trainer.Train(enc, mem, data, labels, true))

	for c := 0; c < 2; c++ {
		cnt, err := mem.Count(c)
		require.NoError(t, err)
		assert.Greater(t, cnt, 0)
	}
}

func TestTrainBinaryBulkPopulatesAssocMem(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBinary, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)

	data, labels := syntheticDataset(40, 3, 11)
	require.NoError(t, trainer.Train(enc, mem, data, labels, false))

	for c := 0; c < 2; c++ {
		cnt, err := mem.Count(c)
		require.NoError(t, err)
		assert.Greater(t, cnt, 0)
	}
}

func TestTrainRejectsLengthMismatch(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBinary, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	err = trainer.Train(enc, mem, [][]float64{{1, 2, 3}}, []int{0, 1}, false)
	assert.ErrorIs(t, err, trainer.ErrLengthMismatch)
}

func TestTrainRollingPopulatesSameClassesAsBulk(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBinary, 3)

	bulkMem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	rollingMem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)

	data, labels := syntheticDataset(50, 3, 13)
	require.NoError(t, trainer.Train(enc, bulkMem, data, labels, false))
	require.NoError(t, trainer.TrainRolling(enc, rollingMem, data, labels))

	for c := 0; c < 2; c++ {
		bulkCnt, err := bulkMem.Count(c)
		require.NoError(t, err)
		rollCnt, err := rollingMem.Count(c)
		require.NoError(t, err)
		if bulkCnt == 0 {
			continue
		}
		assert.Greater(t, rollCnt, 0)
	}
}

func TestTrainRollingRejectsBipolar(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBipolar, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBipolar, 0.5)
	require.NoError(t, err)
	data, labels := syntheticDataset(20, 3, 17)
	err = trainer.TrainRolling(enc, mem, data, labels)
	assert.ErrorIs(t, err, trainer.ErrRollingRequiresBinary)
}

func TestTrainGeneralNonTemporal(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBipolar, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBipolar, 0.9)
	require.NoError(t, err)

	data, labels := syntheticDataset(20, 3, 19)
	require.NoError(t, trainer.TrainGeneral(enc, mem, data, labels, false))

	for c := 0; c < 2; c++ {
		cnt, err := mem.Count(c)
		require.NoError(t, err)
		assert.Greater(t, cnt, 0)
	}
}

func TestTrainGeneralRejectsOutOfRangeLabel(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBinary, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	data := [][]float64{{1, 2, 3}}
	labels := []int{5}
	err = trainer.TrainGeneral(enc, mem, data, labels, false)
	assert.ErrorIs(t, err, trainer.ErrClassOutOfRange)
}
