// Package symtab reads the text symbol table (R.txt) written by the Android
// resource compiler and yields the integer symbols r2gen can re-expose.
//
// Each line is single-space separated:
//
//	int <type> <name> <value...>
//
// Everything after the third separator is the value payload and is kept
// verbatim. Lines that are too short, not of kind "int", of an unsupported
// resource type, or without a value are skipped; they are never errors.
package symtab

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/spf13/afero"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/restype"
)

const (
	// intKind marks an integer-valued symbol. Styleable arrays use "int[]".
	intKind = "int"

	fieldCount  = 4
	initBufSize = 64 * 1024
	maxLineSize = 4 * 1024 * 1024
)

// Symbol is one integer resource decoded from a symbol table line.
type Symbol struct {
	Type  restype.Type `json:"type" yaml:"type" toml:"type"`
	Name  string       `json:"name" yaml:"name" toml:"name"`
	Value string       `json:"value" yaml:"value" toml:"value"`
	Line  int          `json:"line" yaml:"line" toml:"line"` // 1-based line in the table
}

// Reader streams symbols out of a symbol table. A Reader holds only the
// statistics of its latest read; it is not safe for concurrent reads.
type Reader struct {
	fs     afero.Fs
	stats  Stats
	onSkip func(line int, text string, reason SkipReason)
}

// NewReader creates a Reader over fs. A nil fs means the OS filesystem.
func NewReader(fs afero.Fs) *Reader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Reader{fs: fs}
}

// OnSkip registers a callback invoked for every line that yields no symbol.
func (r *Reader) OnSkip(fn func(line int, text string, reason SkipReason)) {
	r.onSkip = fn
}

// Stats returns the counters of the most recent read.
func (r *Reader) Stats() Stats {
	return r.stats
}

// ReadFile returns the symbols of the table at path, in file order.
//
// Each call re-opens the file, so ranging twice yields the same sequence.
// If the file cannot be opened or read, the sequence yields a single error
// marked with errors.ErrSymbolTableAccess and stops.
func (r *Reader) ReadFile(path string) iter.Seq2[Symbol, error] {
	return func(yield func(Symbol, error) bool) {
		r.stats = Stats{}

		f, err := r.fs.Open(path)
		if err != nil {
			yield(Symbol{}, errors.Wrapf(errors.Mark(err, errors.ErrSymbolTableAccess),
				"failed to open symbol table %s", path))
			return
		}
		defer f.Close()

		if info, err := f.Stat(); err == nil && info.IsDir() {
			yield(Symbol{}, errors.Wrapf(errors.Mark(errors.New("is a directory"), errors.ErrSymbolTableAccess),
				"failed to open symbol table %s", path))
			return
		}

		r.scan(f, func(sym Symbol, err error) bool {
			return yield(sym, errors.Wrapf(err, "symbol table %s", path))
		})
	}
}

// Read returns the symbols found in src, in stream order.
func (r *Reader) Read(src io.Reader) iter.Seq2[Symbol, error] {
	return func(yield func(Symbol, error) bool) {
		r.stats = Stats{}
		r.scan(src, yield)
	}
}

func (r *Reader) scan(src io.Reader, yield func(Symbol, error) bool) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, initBufSize), maxLineSize)

	for scanner.Scan() {
		r.stats.Lines++
		text := scanner.Text()

		sym, reason := ParseLine(text)
		if reason != Kept {
			r.stats.count(reason)
			if r.onSkip != nil {
				r.onSkip(r.stats.Lines, text, reason)
			}
			continue
		}

		sym.Line = r.stats.Lines
		r.stats.Symbols++
		if !yield(sym, nil) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		yield(Symbol{}, errors.Wrapf(errors.Mark(err, errors.ErrSymbolTableAccess),
			"failed to read line %d", r.stats.Lines+1))
	}
}

// ParseLine decodes a single symbol table line. The returned reason is Kept
// when the line produced a symbol; Symbol.Line is left for the caller to set.
func ParseLine(line string) (Symbol, SkipReason) {
	fields := strings.SplitN(line, " ", fieldCount)
	if len(fields) < fieldCount {
		return Symbol{}, SkipShort
	}
	if fields[0] != intKind {
		return Symbol{}, SkipNotInt
	}
	typ, ok := restype.Lookup(fields[1])
	if !ok {
		return Symbol{}, SkipUnsupportedType
	}
	if fields[3] == "" {
		return Symbol{}, SkipEmptyValue
	}
	return Symbol{Type: typ, Name: fields[2], Value: fields[3]}, Kept
}
