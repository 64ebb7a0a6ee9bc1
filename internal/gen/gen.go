// Package gen implements the build-time generation pass: it expands the
// recursive pack queries into a flat generated Go source file of
// precomputed constants, for programs that consume query results without
// linking the pack package itself.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	gotoken "go/token"
	"io"
	"text/template"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/typepack/typepack/internal/syntax"
	"github.com/typepack/typepack/pack"
	"github.com/typepack/typepack/token"
)

// Manifest describes the generation input: a target package name and a set
// of named packs given as type-list expressions.
type Manifest struct {
	Package string    `toml:"package"`
	Packs   []PackDef `toml:"pack"`
}

// PackDef is one named pack in a manifest.
type PackDef struct {
	Name  string `toml:"name"`
	Types string `toml:"types"`
}

// ParseManifest parses and validates a TOML manifest. Any malformed entry
// is an error: generation refuses rather than emitting a partial table.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	if m.Package == "" {
		return nil, fmt.Errorf("manifest: missing package name")
	}
	if !gotoken.IsIdentifier(m.Package) {
		return nil, fmt.Errorf("manifest: invalid package name %q", m.Package)
	}
	if len(m.Packs) == 0 {
		return nil, fmt.Errorf("manifest: no packs defined")
	}

	seen := make(map[string]bool, len(m.Packs))
	for _, pd := range m.Packs {
		if pd.Name == "" {
			return nil, fmt.Errorf("manifest: pack with missing name")
		}
		if !gotoken.IsIdentifier(pd.Name) {
			return nil, fmt.Errorf("manifest: invalid pack name %q", pd.Name)
		}
		if seen[pd.Name] {
			return nil, fmt.Errorf("manifest: duplicate pack name %q", pd.Name)
		}
		seen[pd.Name] = true
		if _, err := syntax.Parse(pd.Types); err != nil {
			return nil, fmt.Errorf("manifest: pack %q: %w", pd.Name, err)
		}
	}
	return &m, nil
}

// packData is the precomputed query output for one pack, ready for the
// template.
type packData struct {
	Name   string
	Expr   string // canonical expression, (*pack.Pack).String form
	Size   uint
	Unique bool
	Types  []string
	Firsts []firstIndex
}

// firstIndex records the first occurrence of one distinct token.
type firstIndex struct {
	Token string
	Index uint
}

type fileData struct {
	Package string
	Packs   []packData
}

// Generate computes every query result for the manifest's packs and writes
// the generated source to w. The recursive algorithms run here, at
// generation time; the emitted file contains only flat constants.
func Generate(w io.Writer, m *Manifest) error {
	data := fileData{Package: m.Package}
	for _, pd := range m.Packs {
		ts, err := syntax.Parse(pd.Types)
		if err != nil {
			return fmt.Errorf("pack %q: %w", pd.Name, err)
		}
		p := pack.New(ts...)

		d := packData{
			Name:   pd.Name,
			Expr:   p.String(),
			Size:   p.Size(),
			Unique: p.Unique(),
		}
		for _, t := range ts {
			d.Types = append(d.Types, t.String())
		}
		for _, t := range distinct(ts) {
			d.Firsts = append(d.Firsts, firstIndex{Token: t.String(), Index: p.Find(t)})
		}
		data.Packs = append(data.Packs, d)
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// distinct returns the tokens of ts with later duplicates removed,
// preserving first-occurrence order.
func distinct(ts []token.Type) []token.Type {
	var out []token.Type
	for _, t := range ts {
		if !pack.Has(t, out...) {
			out = append(out, t)
		}
	}
	return out
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by packq gen; DO NOT EDIT.

package {{.Package}}

// NotFound is the sentinel index for tokens absent from a pack.
const NotFound = ^uint(0)
{{range .Packs}}
// {{.Name}} pack: {{.Expr}}
const (
	{{.Name}}Size   uint = {{.Size}}
	{{.Name}}Unique bool = {{.Unique}}
)

// {{.Name}}Types lists the pack's tokens in order.
var {{.Name}}Types = []string{
{{- range .Types}}
	{{printf "%q" .}},
{{- end}}
}

// {{.Name}}FirstIndex maps each token of the pack to its first occurrence.
// Tokens not in the map are not in the pack.
var {{.Name}}FirstIndex = map[string]uint{
{{- range .Firsts}}
	{{printf "%q" .Token}}: {{.Index}},
{{- end}}
}
{{end}}`))
