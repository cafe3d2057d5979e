package extract

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.OutputDir = dir
	return opts
}

func TestExtractPageWritesResizedImages(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	var out bytes.Buffer
	e := NewPageImageExtractor(state, testOptions(dir), &out, zerolog.Nop())

	saved, err := e.ExtractPage(0, rawsOf(0, pngOf(t, 800, 600, 1), pngOf(t, 600, 1000, 2)))
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.Equal(t, filepath.Join(dir, "image_1.jpg"), saved[0].Path)
	assert.Equal(t, filepath.Join(dir, "image_2.jpg"), saved[1].Path)
	assert.Equal(t, 560, saved[0].Width)
	assert.Equal(t, 420, saved[0].Height)
	assert.Equal(t, 420, saved[1].Width)
	assert.Equal(t, 700, saved[1].Height)

	f, err := os.Open(saved[0].Path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 560, cfg.Width)
	assert.Equal(t, 420, cfg.Height)

	assert.Equal(t, 3, state.Counter)
	assert.Len(t, state.Seen, 2)
	assert.Empty(t, out.String())
}

func TestExtractPageCounterSpansPages(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	e := NewPageImageExtractor(state, testOptions(dir), &bytes.Buffer{}, zerolog.Nop())

	var paths []string
	for page := 0; page < 3; page++ {
		saved, err := e.ExtractPage(page, rawsOf(page, pngOf(t, 500, 500, uint8(page+1))))
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, page, saved[0].Page)
		paths = append(paths, filepath.Base(saved[0].Path))
	}

	assert.Equal(t, []string{"image_1.jpg", "image_2.jpg", "image_3.jpg"}, paths)
	assert.Equal(t, 4, state.Counter)
}

func TestExtractPageSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	var out bytes.Buffer
	e := NewPageImageExtractor(state, testOptions(dir), &out, zerolog.Nop())

	img := pngOf(t, 700, 700, 9)
	saved, err := e.ExtractPage(0, rawsOf(0, img, img))
	require.NoError(t, err)
	require.Len(t, saved, 1)

	saved, err = e.ExtractPage(1, rawsOf(1, img))
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.Equal(t, "Skipping duplicate image on page 1\nSkipping duplicate image on page 2\n", out.String())
	assert.Equal(t, 2, state.Counter)
	assert.Equal(t, 2, state.Stats.Duplicates)
	assert.Equal(t, 1, state.Stats.Saved)
	assert.Equal(t, 3, state.Stats.Images)
}

func TestExtractPageUndersizedNotRecorded(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	var out bytes.Buffer
	e := NewPageImageExtractor(state, testOptions(dir), &out, zerolog.Nop())

	small := pngOf(t, 499, 800, 3)
	saved, err := e.ExtractPage(0, rawsOf(0, small, small))
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Neither occurrence is reported as a duplicate because the
	// fingerprint is only recorded for images that pass the size check.
	assert.Empty(t, out.String())
	assert.Empty(t, state.Seen)
	assert.Equal(t, 1, state.Counter)
	assert.Equal(t, 2, state.Stats.Undersized)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractPageKeepsEnumerationOrder(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	e := NewPageImageExtractor(state, testOptions(dir), &bytes.Buffer{}, zerolog.Nop())

	sizes := [][2]int{{1000, 500}, {600, 600}, {500, 900}}
	var payloads [][]byte
	for i, s := range sizes {
		payloads = append(payloads, pngOf(t, s[0], s[1], uint8(i)))
	}

	saved, err := e.ExtractPage(0, rawsOf(0, payloads...))
	require.NoError(t, err)
	require.Len(t, saved, 3)

	want := [][2]int{{700, 350}, {420, 420}, {350, 630}}
	for i, s := range saved {
		assert.Equal(t, want[i], [2]int{s.Width, s.Height}, "image %d", i)
	}
}

func TestExtractPageDecodeError(t *testing.T) {
	dir := t.TempDir()
	state := NewRunState()
	e := NewPageImageExtractor(state, testOptions(dir), &bytes.Buffer{}, zerolog.Nop())

	raws := rawsOf(4, pngOf(t, 600, 600, 1), []byte("JPX or garbage"))
	saved, err := e.ExtractPage(4, raws)
	require.Error(t, err)
	assert.Len(t, saved, 1)

	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.ErrorTypeDecode, de.Type)
	assert.Equal(t, 4, de.Page)
	assert.Equal(t, 1, de.Image)
	assert.Contains(t, err.Error(), "page 5, image 2")
}

func TestExtractPageWriteError(t *testing.T) {
	// Output "directory" is a regular file, so every write fails
	dir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(dir, nil, 0o644))

	state := NewRunState()
	e := NewPageImageExtractor(state, testOptions(dir), &bytes.Buffer{}, zerolog.Nop())

	_, err := e.ExtractPage(0, rawsOf(0, pngOf(t, 600, 600, 1)))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeIO))
	assert.Equal(t, 1, state.Counter, "counter must not advance on a failed write")
}

func TestExtractPagePNGOutput(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.Format = "png"
	e := NewPageImageExtractor(NewRunState(), opts, &bytes.Buffer{}, zerolog.Nop())

	saved, err := e.ExtractPage(0, rawsOf(0, pngOf(t, 500, 500, 1)))
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, filepath.Join(dir, "image_1.png"), saved[0].Path)

	data, err := os.ReadFile(saved[0].Path)
	require.NoError(t, err)
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}
