package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/logger"
	"go.uber.org/zap"
)

// memFsWithFixture copies testdata/R.txt into a fresh in-memory filesystem.
func memFsWithFixture(t *testing.T) afero.Fs {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "R.txt"))
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app/build/R.txt", data, 0644))
	return fs
}

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func fixtureParams(syntax emit.Syntax) Params {
	return Params{
		SymbolTable: "/app/build/R.txt",
		OutputDir:   "/app/build/generated",
		PackageName: "com.butterknife.example",
		ClassName:   "R2",
		Syntax:      syntax,
	}
}

func TestGenerateJava(t *testing.T) {
	fs := memFsWithFixture(t)

	res, err := New(fs).Generate(fixtureParams(emit.Java))
	require.NoError(t, err)

	want := "/app/build/generated/com/butterknife/example/R2.java"
	assert.Equal(t, filepath.FromSlash(want), res.Path)
	assert.Equal(t, 11, res.Symbols)
	assert.Equal(t, 8, res.Groups)
	assert.Equal(t, 4, res.Stats.Skipped())

	got, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "R2.java"), string(got))
}

func TestGenerateKotlin(t *testing.T) {
	fs := memFsWithFixture(t)

	res, err := New(fs).Generate(fixtureParams(emit.Kotlin))
	require.NoError(t, err)
	assert.Equal(t, "R2.kt", filepath.Base(res.Path))

	got, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "R2.kt"), string(got))
}

func TestGenerateIsIdempotent(t *testing.T) {
	fs := memFsWithFixture(t)
	g := New(fs)

	first, err := g.Generate(fixtureParams(emit.Java))
	require.NoError(t, err)
	a, err := afero.ReadFile(fs, first.Path)
	require.NoError(t, err)

	second, err := g.Generate(fixtureParams(emit.Java))
	require.NoError(t, err)
	b, err := afero.ReadFile(fs, second.Path)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	entries, err := afero.ReadDir(fs, filepath.Dir(first.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestGenerateMissingSymbolTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := fixtureParams(emit.Java)

	_, err := New(fs).Generate(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSymbolTableAccess))
	assert.True(t, errors.IsInputError(err))

	exists, err := afero.DirExists(fs, p.OutputDir)
	require.NoError(t, err)
	assert.False(t, exists, "nothing is written when the input cannot be read")
}

func TestGenerateUnwritableOutput(t *testing.T) {
	fs := afero.NewReadOnlyFs(memFsWithFixture(t))

	_, err := New(fs).Generate(fixtureParams(emit.Java))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutputPath))
}

func TestGenerateUnknownSyntax(t *testing.T) {
	fs := memFsWithFixture(t)
	p := fixtureParams("swift")

	_, err := New(fs).Generate(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownSyntax))
	assert.Contains(t, errors.FlattenHints(err), "java, kotlin")
}

func TestGenerateLegacyAnnotations(t *testing.T) {
	fs := memFsWithFixture(t)
	p := fixtureParams(emit.Java)
	p.LegacyAnnotations = true

	res, err := New(fs).Generate(p)
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "import android.support.annotation.IdRes;\n")
	assert.NotContains(t, string(got), "androidx")
}

func TestGenerateEmptySymbolTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/R.txt", []byte("int[] styleable X { 1 }\n"), 0644))

	res, err := New(fs).Generate(Params{
		SymbolTable: "/R.txt",
		OutputDir:   "/out",
		PackageName: "com.example",
		ClassName:   "R2",
		Syntax:      emit.Java,
	})
	require.NoError(t, err)
	assert.Zero(t, res.Symbols)
	assert.Zero(t, res.Groups)

	got, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Equal(t, "// Generated code from r2gen. Do not modify!\n"+
		"package com.example;\n\n"+
		"public final class R2 {\n"+
		"  private R2() {\n"+
		"  }\n"+
		"}\n", string(got))
}

func TestRenderWritesNothing(t *testing.T) {
	fs := memFsWithFixture(t)
	p := fixtureParams(emit.Java)

	doc, summary, err := New(fs).Render(p)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "R2.java"), string(doc.Content))
	assert.Equal(t, 11, summary.Symbols)

	exists, err := afero.DirExists(fs, p.OutputDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadGroupsInRegistryOrder(t *testing.T) {
	class, stats, err := New(memFsWithFixture(t)).Load("/app/build/R.txt")
	require.NoError(t, err)

	var names []string
	for _, g := range class.Groups() {
		names = append(names, g.Type.String())
	}
	assert.Equal(t, []string{"anim", "attr", "color", "dimen", "id", "layout", "string", "styleable"}, names)
	assert.Equal(t, 15, stats.Lines)
	assert.Equal(t, 11, stats.Symbols)
	assert.Equal(t, 2, stats.NotInt)
	assert.Equal(t, 1, stats.Unsupported)
	assert.Equal(t, 1, stats.Short)
}

func TestEmitterFor(t *testing.T) {
	e, err := EmitterFor(emit.Java)
	require.NoError(t, err)
	assert.Equal(t, "java", e.FileExtension())

	e, err = EmitterFor(emit.Kotlin)
	require.NoError(t, err)
	assert.Equal(t, "kt", e.FileExtension())

	_, err = EmitterFor("dart")
	assert.True(t, errors.Is(err, errors.ErrUnknownSyntax))
}

func TestGeneratorLogsAfterLateInitialize(t *testing.T) {
	g := New(memFsWithFixture(t))

	var buf bytes.Buffer
	require.NoError(t, logger.InitializeWithWriter(true, &buf))
	logger.SetVerbosity(logger.VerbosityInfo)
	t.Cleanup(func() {
		logger.SetVerbosity(logger.VerbosityUser)
		logger.Logger = zap.NewNop().Sugar()
	})

	_, err := g.Generate(fixtureParams(emit.Java))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"logger":"generate"`)
	assert.Contains(t, buf.String(), "Generated")
}
