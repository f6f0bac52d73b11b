package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/restype"
	"github.com/teranos/r2gen/shadow"
	"github.com/teranos/r2gen/symtab"
)

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		in      string
		want    Syntax
		wantErr bool
	}{
		{"java", Java, false},
		{"JAVA", Java, false},
		{" kotlin ", Kotlin, false},
		{"kt", Kotlin, false},
		{"kts", Kotlin, false},
		{"", "", true},
		{"swift", "", true},
		{"javascript", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSyntax(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnknownSyntax))
				assert.NotEmpty(t, errors.GetAllHints(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentPaths(t *testing.T) {
	doc := &Document{PackageName: "com.example.app", ClassName: "R2", Extension: "kt"}

	assert.Equal(t, "R2.kt", doc.FileName())
	assert.Equal(t, filepath.Join("com", "example", "app", "R2.kt"), doc.RelPath())
	assert.Equal(t, filepath.Join("out", "com", "example", "app", "R2.kt"), doc.Path("out"))
	assert.Equal(t, "single", PackageDir("single"))
}

func groupsOf(types ...restype.Type) []shadow.Group {
	var groups []shadow.Group
	for _, t := range types {
		groups = append(groups, shadow.Group{Type: t, Symbols: []symtab.Symbol{{Type: t, Name: "x", Value: "1"}}})
	}
	return groups
}

func TestImports(t *testing.T) {
	groups := groupsOf(restype.Color, restype.Anim, restype.String)

	assert.Equal(t, []string{
		"androidx.annotation.AnimRes",
		"androidx.annotation.ColorRes",
		"androidx.annotation.StringRes",
	}, Imports(groups, Options{ClassName: "R2"}))

	assert.Equal(t, []string{
		"android.support.annotation.AnimRes",
		"android.support.annotation.ColorRes",
		"android.support.annotation.StringRes",
	}, Imports(groups, Options{ClassName: "R2", LegacyAnnotations: true}))

	assert.Empty(t, Imports(nil, Options{ClassName: "R2"}))
}

func TestAnnotationRefQualifiesOnClassNameCollision(t *testing.T) {
	opts := Options{ClassName: "StringRes"}

	assert.Equal(t, "androidx.annotation.StringRes", AnnotationRef(restype.String, opts))
	assert.Equal(t, "ColorRes", AnnotationRef(restype.Color, opts))
	assert.Equal(t,
		[]string{"androidx.annotation.ColorRes"},
		Imports(groupsOf(restype.Color, restype.String), opts))
}

func TestWriterWritesAtomically(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs)
	doc := &Document{PackageName: "com.example", ClassName: "R2", Extension: "java", Content: []byte("class R2 {}\n")}

	path, err := w.Write(doc, "/gen")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/gen", "com", "example", "R2.java"), path)

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, got)

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, filePerm, info.Mode().Perm())

	entries, err := afero.ReadDir(fs, filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriterOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs)
	doc := &Document{PackageName: "p", ClassName: "R2", Extension: "kt", Content: []byte("old")}

	_, err := w.Write(doc, "/gen")
	require.NoError(t, err)

	doc.Content = []byte("new")
	path, err := w.Write(doc, "/gen")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriterReadOnlyFs(t *testing.T) {
	w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	doc := &Document{PackageName: "p", ClassName: "R2", Extension: "java", Content: []byte("x")}

	_, err := w.Write(doc, "/gen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutputPath))
}

func TestWriterOutputDirIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "gen")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))

	doc := &Document{PackageName: "com.example", ClassName: "R2", Extension: "java", Content: []byte("x")}
	_, err := NewWriter(nil).Write(doc, blocker)

	require.Error(t, err)
	assert.True(t, errors.IsOutputError(err))
}
