// Package diag renders padding masks as grayscale images for visual
// inspection, mirroring the summary images the training dashboards
// show: one row per batch element, one column per time step, white for
// real positions and black for padding.
package diag

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chrawr-ml/chrawr/internal/nn"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// maxRows caps how many batch rows a mask image shows.
const maxRows = 32

// MaskImage renders a [batch, time, 1] mask as a grayscale image with
// at most 32 rows.
func MaskImage(mask *tensor.Tensor) (*image.Gray, error) {
	shape := mask.Shape()
	if len(shape) != 3 || shape[2] != 1 {
		return nil, fmt.Errorf("mask image: expected shape [B,T,1], got %v", shape)
	}

	rows := shape[0]
	if rows > maxRows {
		rows = maxRows
	}
	cols := shape[1]

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	data := mask.Data()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if data[r*cols+c] != 0 {
				img.SetGray(c, r, color.Gray{Y: 255})
			}
		}
	}
	return img, nil
}

// WriteMaskPNG renders the mask and writes it to path.
func WriteMaskPNG(path string, mask *tensor.Tensor) error {
	img, err := MaskImage(mask)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mask image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode mask image: %w", err)
	}
	return nil
}

// Observer returns a mask observer that writes each observed mask to
// dir as <name>.png and logs its shape. Write failures are logged, not
// fatal: diagnostics never abort a forward pass.
func Observer(dir string, logger *slog.Logger) nn.MaskObserver {
	return func(name string, mask *tensor.Tensor) {
		path := filepath.Join(dir, name+".png")
		if err := WriteMaskPNG(path, mask); err != nil {
			logger.Warn("mask image not written", "name", name, "error", err)
			return
		}
		logger.Info("mask image written", "name", name, "shape", mask.Shape(), "path", path)
	}
}
