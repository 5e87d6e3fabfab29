//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

var fracTemplate = `
// F{{ . }} marks a type with {{ . }} fractional bits.
type F{{ . }} struct{}

func (F{{ . }}) fracBits() uint { return {{ . }} }
`

func main() {
	log.Default().SetFlags(log.Lshortfile)

	tmpl, err := template.New("fracTemplate").Parse(fracTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBuffer(nil)
	fmt.Fprintln(source, "// Code generated by mkfrac.go; DO NOT EDIT.")
	fmt.Fprintln(source)
	fmt.Fprintln(source, "package fxp")

	for n := 0; n <= 128; n++ {
		if err := tmpl.Execute(source, n); err != nil {
			log.Fatalln(err)
		}
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	if err := os.WriteFile("frac_gen.go", formattedSource, 0644); err != nil {
		log.Fatalln(err)
	}
}
