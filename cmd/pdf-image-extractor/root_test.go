package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeGrayPNG(w io.Writer, width, height int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) / 8)})
		}
	}
	return png.Encode(w, img)
}

func gradientPDF(t *testing.T, w, h int) string {
	t.Helper()

	var img bytes.Buffer
	require.NoError(t, writeGrayPNG(&img, w, h))

	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	path := filepath.Join(t.TempDir(), "doc.pdf")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	readers := []io.Reader{bytes.NewReader(img.Bytes())}
	require.NoError(t, api.ImportImages(nil, f, readers, pdfcpu.DefaultImportConfig(), conf))
	return path
}

func TestQualityOutOfRangeFailsBeforeProcessing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	stdout, _, err := execute(t, "missing.pdf", "--output_dir", outDir, "--img_quality", "150")

	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
	assert.Equal(t, exitUsage, exitCode(err))
	assert.NotContains(t, stdout, "Text on Page")
	assert.NoDirExists(t, outDir)
}

func TestMissingInputArgument(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "doc.pdf", "--img_qualty", "80")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestMissingInputFile(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "absent.pdf"), "--output_dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeInput))
	assert.Equal(t, exitFatal, exitCode(err))
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}

func TestExtractsImage(t *testing.T) {
	path := gradientPDF(t, 800, 600)
	outDir := filepath.Join(t.TempDir(), "images")

	stdout, stderr, err := execute(t, path, "--output_dir", outDir, "--img_format", "png", "--log_format", "json")
	require.NoError(t, err)

	saved := filepath.Join(outDir, "image_1.png")
	assert.FileExists(t, saved)
	assert.True(t, strings.HasPrefix(stdout, "Text on Page 1:\n"))
	assert.Contains(t, stdout, "Image Saved: "+saved+"\n")
	assert.Contains(t, stderr, `"run_id"`)
	assert.Contains(t, stderr, `"saved":1`)
}
