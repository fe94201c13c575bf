package diag

import (
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrawr-ml/chrawr/internal/backend/cpu"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestMaskImage tests pixel values and dimensions.
func TestMaskImage(t *testing.T) {
	backend := cpu.New()

	mask, err := tensor.FromSlice([]float32{
		1, 0, 1,
		0, 1, 0,
	}, tensor.Shape{2, 3, 1}, backend)
	require.NoError(t, err)

	img, err := MaskImage(mask)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(2, 1).Y)
}

// TestMaskImage_RowCap tests that large batches are truncated to 32 rows.
func TestMaskImage_RowCap(t *testing.T) {
	backend := cpu.New()

	mask := tensor.Ones(tensor.Shape{64, 4, 1}, backend)
	img, err := MaskImage(mask)
	require.NoError(t, err)

	assert.Equal(t, 32, img.Bounds().Dy())
}

// TestMaskImage_BadShape tests the shape precondition.
func TestMaskImage_BadShape(t *testing.T) {
	backend := cpu.New()

	_, err := MaskImage(tensor.Ones(tensor.Shape{2, 3, 4}, backend))
	assert.Error(t, err)
}

// TestWriteMaskPNG tests that the file is a decodable PNG.
func TestWriteMaskPNG(t *testing.T) {
	backend := cpu.New()
	mask := tensor.Ones(tensor.Shape{2, 3, 1}, backend)

	path := filepath.Join(t.TempDir(), "mask.png")
	require.NoError(t, WriteMaskPNG(path, mask))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
}

// TestObserver tests the mask hook end to end.
func TestObserver(t *testing.T) {
	backend := cpu.New()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	observe := Observer(dir, logger)
	observe("emb_mask", tensor.Ones(tensor.Shape{1, 4, 1}, backend))

	_, err := os.Stat(filepath.Join(dir, "emb_mask.png"))
	assert.NoError(t, err)
}
