package kotlin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/shadow"
	"github.com/teranos/r2gen/symtab"
)

func groupsFromLines(t *testing.T, lines ...string) []shadow.Group {
	t.Helper()
	class := shadow.New()
	for sym, err := range symtab.NewReader(nil).Read(strings.NewReader(strings.Join(lines, "\n"))) {
		require.NoError(t, err)
		class.Add(sym)
	}
	return class.Groups()
}

var defaultOpts = emit.Options{PackageName: "com.example", ClassName: "R2"}

func TestEmitGroupsInRegistryOrder(t *testing.T) {
	groups := groupsFromLines(t,
		"int id btn_ok 1",
		"int color primary 2",
		"int id btn_cancel 3",
	)

	doc := NewGenerator().Emit(groups, defaultOpts)

	expected := `// Generated code from r2gen. Do not modify!
package com.example

import androidx.annotation.ColorRes
import androidx.annotation.IdRes

public object R2 {
  public object color {
    @ColorRes
    public const val primary: Int = 2
  }

  public object id {
    @IdRes
    public const val btn_ok: Int = 1

    @IdRes
    public const val btn_cancel: Int = 3
  }
}
`
	assert.Equal(t, expected, string(doc.Content))
	assert.Equal(t, emit.Kotlin, doc.Syntax)
	assert.Equal(t, "R2.kt", doc.FileName())
}

func TestEmitStringExample(t *testing.T) {
	groups := groupsFromLines(t, "int string app_name 0x7f0a0001")
	content := string(NewGenerator().Emit(groups, defaultOpts).Content)

	assert.Contains(t, content, "import androidx.annotation.StringRes\n")
	assert.Contains(t, content, "    @StringRes\n    public const val app_name: Int = 0x7f0a0001\n")
}

func TestEmitLegacyAnnotations(t *testing.T) {
	groups := groupsFromLines(t, "int menu main 9")
	opts := defaultOpts
	opts.LegacyAnnotations = true

	content := string(NewGenerator().Emit(groups, opts).Content)
	assert.Contains(t, content, "import android.support.annotation.MenuRes\n")
	assert.NotContains(t, content, "androidx")
}

func TestEmitEscapesKeywords(t *testing.T) {
	groups := groupsFromLines(t, "int id in 1", "int id object 2", "int id normal 3")
	opts := emit.Options{PackageName: "com.example.when", ClassName: "R2"}

	content := string(NewGenerator().Emit(groups, opts).Content)
	assert.Contains(t, content, "package com.example.`when`\n")
	assert.Contains(t, content, "public const val `in`: Int = 1\n")
	assert.Contains(t, content, "public const val `object`: Int = 2\n")
	assert.Contains(t, content, "public const val normal: Int = 3\n")
}

func TestEmitEmpty(t *testing.T) {
	doc := NewGenerator().Emit(nil, emit.Options{PackageName: "a.b", ClassName: "Res"})

	expected := "// Generated code from r2gen. Do not modify!\n" +
		"package a.b\n\n" +
		"public object Res\n"
	assert.Equal(t, expected, string(doc.Content))
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "`fun`", Ident("fun"))
	assert.Equal(t, "value", Ident("value"))
	assert.Equal(t, "data", Ident("data"), "soft keywords stay bare")
}

func TestEmitDeterministic(t *testing.T) {
	groups := groupsFromLines(t, "int id a 1", "int string s 2", "int anim f 3")
	g := NewGenerator()

	assert.Equal(t, g.Emit(groups, defaultOpts).Content, g.Emit(groups, defaultOpts).Content)
}
