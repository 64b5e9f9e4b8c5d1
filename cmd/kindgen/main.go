// Command kindgen renders the typed object accessors of package ntuple from the
// kind table in package catalog.
//
//	go run ./cmd/kindgen -o ntuple/objects_gen.go
package main

import (
	"bytes"
	"flag"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/danthegoodman1/hgcalntuple/catalog"
	"github.com/danthegoodman1/hgcalntuple/gologger"
)

var logger = gologger.ForComponent("kindgen")

func main() {
	out := flag.String("o", "objects_gen.go", "output file")
	flag.Parse()

	src, err := render(catalog.All)
	if err != nil {
		logger.Error().Err(err).Msg("error rendering accessors")
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Error().Err(err).Str("out", *out).Msg("error writing accessors")
		os.Exit(1)
	}
	logger.Info().Str("out", *out).Int("kinds", len(catalog.All)).Msg("generated accessors")
}

func render(kinds []catalog.Kind) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, kinds); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func exported(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// accessorName avoids clashing with the hand written cross reference methods,
// which take the plain names: cluster2d -> Cluster2dIndices, pfClusterIndex -> PfClusterIndices.
func accessorName(f catalog.Field) string {
	if f.Type != catalog.Indices {
		return exported(f.Name)
	}
	return exported(strings.TrimSuffix(f.Name, "Index")) + "Indices"
}

func columnOf(k catalog.Kind, f catalog.Field) string {
	if k.Prefix == "" {
		return "<prefix>_" + f.Name
	}
	return k.Column(f.Name)
}

var tmpl = template.Must(template.New("objects").Funcs(template.FuncMap{
	"accessor": accessorName,
	"column":   columnOf,
}).Parse(`// Code generated by kindgen from package catalog. DO NOT EDIT.

package ntuple

import "github.com/danthegoodman1/hgcalntuple/catalog"
{{range $k := .}}
// {{$k.Name}} is one object of the {{if $k.Prefix}}{{$k.Prefix}}{{else}}chosen{{end}} column family.
type {{$k.Name}} struct{ Object }

// {{$k.Collection}} are the {{$k.Name}} objects of one event.
type {{$k.Collection}} = Collection[{{$k.Name}}]

func new{{$k.Collection}}(r row{{if not $k.Prefix}}, prefix string{{end}}) {{$k.Collection}} {
	return newCollection(r, catalog.{{$k.Name}}{{if not $k.Prefix}}.WithPrefix(prefix){{end}}, func(o Object) {{$k.Name}} { return {{$k.Name}}{o} })
}
{{range $f := $k.Fields}}
// {{accessor $f}} reads {{column $k $f}}{{if $f.Doc}}, the {{$f.Doc}}{{end}}.
func (o {{$k.Name}}) {{accessor $f}}() ({{if eq $f.Type 0}}float32{{else if eq $f.Type 1}}int{{else}}[]int{{end}}, error) {
	return {{if eq $f.Type 0}}Field[float32](o.Object, "{{$f.Name}}"){{else if eq $f.Type 1}}Field[int](o.Object, "{{$f.Name}}"){{else}}Indices(o.Object, "{{$f.Name}}"){{end}}
}
{{end}}{{end}}`))
