package trainer_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/trainer"
)

func TestTrainWithLoggerEmitsCompletionEvent(t *testing.T) {
	enc := buildEncoder(t, hypervector.ModeBinary, 3)
	mem, err := assocmem.New(2, 64, hypervector.ModeBinary, 0)
	require.NoError(t, err)
	data, labels := syntheticDataset(24, 3, 41)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	require.NoError(t, trainer.Train(enc, mem, data, labels, false, trainer.WithLogger(&logger)))

	assert.Contains(t, buf.String(), "training pass complete")
	assert.Contains(t, buf.String(), `"phase":"train"`)
}
