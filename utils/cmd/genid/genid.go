// Command genid generates typed snowflake declarations. Each type name given
// on the command line becomes a distinct ID type with the usual snowflake
// methods.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed template.tmpl
var idTmpl string

var tmpl = template.Must(template.New("snowflake_types").Parse(idTmpl))

type genFile struct {
	Package       string
	ImportDiscord bool
	Snowflakes    []snowflakeType
}

type snowflakeType struct {
	TypeName string
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		log.Printf("usage: %s [-p package] <type names...>", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	outPath := flag.String("o", "", "output path, empty for stdout")
	pkgName := flag.String("p", "discord", "package name for the generated file")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	gen := genFile{
		Package:       *pkgName,
		ImportDiscord: *pkgName != "discord",
	}
	for _, name := range flag.Args() {
		gen.Snowflakes = append(gen.Snowflakes, snowflakeType{TypeName: name})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, gen); err != nil {
		log.Fatalln("cannot render template:", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalln("cannot gofmt rendered source:", err)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*outPath, src, 0666); err != nil {
		log.Fatalln("cannot write output:", err)
	}
}
