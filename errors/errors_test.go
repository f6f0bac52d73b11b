package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestMarkKeepsMessage(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here/R.txt")
	require.Error(t, statErr)

	marked := Mark(statErr, ErrSymbolTableAccess)

	assert.Equal(t, statErr.Error(), marked.Error())
	assert.True(t, Is(marked, ErrSymbolTableAccess))
	assert.True(t, Is(marked, os.ErrNotExist))
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		input  bool
		output bool
		usage  bool
	}{
		{name: "nil", err: nil},
		{name: "input", err: Wrap(ErrSymbolTableAccess, "open R.txt"), input: true},
		{name: "output path", err: Mark(New("permission denied"), ErrOutputPath), output: true},
		{name: "collision", err: Wrapf(ErrOutputCollision, "%s", "R2.java"), output: true},
		{name: "syntax", err: Wrap(ErrUnknownSyntax, "swift"), usage: true},
		{name: "params", err: Wrap(ErrInvalidParams, "package"), usage: true},
		{name: "unrelated", err: New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, IsInputError(tt.err))
			assert.Equal(t, tt.output, IsOutputError(tt.err))
			assert.Equal(t, tt.usage, IsUsageError(tt.err))
		})
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrUnknownSyntax, "use java or kotlin")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "use java or kotlin", hints[0])
	assert.True(t, Is(err, ErrUnknownSyntax))
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("model frozen after %d groups", 3)
	assert.True(t, HasAssertionFailure(err))
	assert.Contains(t, err.Error(), "model frozen after 3 groups")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, Mark(nil, ErrOutputPath))
}

func ExampleWrap() {
	err := Wrap(ErrSymbolTableAccess, "failed to read app/build/R.txt")
	fmt.Println(err)
	// Output: failed to read app/build/R.txt: symbol table not readable
}
