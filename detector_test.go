package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gamma-omg/key-detector/decompiler"
	mocks "github.com/gamma-omg/key-detector/mocks/decompiler"
	"github.com/gamma-omg/key-detector/report"
	"github.com/gamma-omg/key-detector/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeDecompiler struct {
	files map[string]string
	err   error
	dst   string
}

func (f *fakeDecompiler) Decompile(ctx context.Context, src, dst string) error {
	f.dst = dst
	if f.err != nil {
		return f.err
	}

	for name, content := range f.files {
		path := filepath.Join(dst, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

type fakeScanner struct {
	calls int
}

func (s *fakeScanner) Scan(ctx context.Context, root string, keywords []string) (*scanner.Results, error) {
	s.calls++
	return scanner.New().Scan(ctx, root, keywords)
}

func newTestDetector(t *testing.T, dec PackageDecompiler, sc TreeScanner) *Detector {
	return &Detector{
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		decompiler: dec,
		scanner:    sc,
		status:     report.Silent{},
		workDir:    t.TempDir(),
	}
}

func createPackage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "app.apk")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))
	return path
}

func Test_Detector_Detect(t *testing.T) {
	dec := &fakeDecompiler{files: map[string]string{
		"sources/com/example/Config.java": "class Config {\n    private String API_KEY = \"12345\";\n}\n",
		"res/values/strings.xml":          "<string name=\"api_key\">12345</string>\n",
	}}
	sc := &fakeScanner{}
	d := newTestDetector(t, dec, sc)

	det, err := d.Detect(context.Background(), createPackage(t), []string{"key"})
	require.NoError(t, err)

	assert.Nil(t, det.Package)
	assert.Equal(t, []scanner.Match{{
		File: "sources/com/example/Config.java",
		Line: 2,
		Text: `private String API_KEY = "12345";`,
	}}, det.Results.Matches("key"))

	entries, err := os.ReadDir(d.workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoDirExists(t, dec.dst)
}

func Test_Detector_Detect_ReadsManifest(t *testing.T) {
	dec := &fakeDecompiler{files: map[string]string{
		"sources/Keys.java": "String token = \"abc\";\n",
	}}
	d := newTestDetector(t, dec, &fakeScanner{})

	det, err := d.Detect(context.Background(), filepath.Join("pkginfo", "testdata", "app.apk"), []string{"token"})
	require.NoError(t, err)
	require.NotNil(t, det.Package)
	assert.Equal(t, "com.example.keys", det.Package.Package)
	assert.Equal(t, 1, det.Results.Total())
}

func Test_Detector_Detect_DecompileFailure(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	sc := &fakeScanner{}
	d := newTestDetector(t, decompiler.NewApktool(decompiler.WithRunner(runner)), sc)

	_, err := d.Detect(context.Background(), createPackage(t), []string{"key"})
	require.ErrorIs(t, err, decompiler.ErrDecompile)
	assert.Equal(t, 0, sc.calls)

	entries, err := os.ReadDir(d.workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_Detector_Detect_MissingPackage(t *testing.T) {
	runner := mocks.NewMockRunner(t)

	sc := &fakeScanner{}
	d := newTestDetector(t, decompiler.NewApktool(decompiler.WithRunner(runner)), sc)

	_, err := d.Detect(context.Background(), filepath.Join(t.TempDir(), "missing.apk"), []string{"key"})
	require.ErrorIs(t, err, decompiler.ErrPackageNotFound)
	assert.Equal(t, 0, sc.calls)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Detector_Detect_ScanFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dec := &fakeDecompiler{files: map[string]string{"a.java": "String secret = \"a\";\n"}}
	d := newTestDetector(t, dec, scanner.New())

	cancel()
	_, err := d.Detect(ctx, createPackage(t), []string{"secret"})
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(d.workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
