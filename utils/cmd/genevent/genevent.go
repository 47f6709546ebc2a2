// Command genevent generates the Op and EventType methods plus the
// OpUnmarshalers registry for the payload structs declared in the current
// directory. It keys off the doc comment convention used by the gateway
// packages:
//
//	// XxxEvent is a dispatch event for EVENT_NAME.
//	// XxxEvent is an event for Op N.
//	// XxxCommand is a command for Op N.
//
// Dispatch events without an EVENT_NAME get one derived from the struct name.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"go/format"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/pkg/errors"
)

//go:embed template.tmpl
var methodsTmpl string

var tmpl = template.Must(template.New("event_methods").Parse(methodsTmpl))

// payloadDoc matches the doc comment and declaration of an event or command
// struct. The comment's subject must repeat the declared type name.
var payloadDoc = regexp.MustCompile("(?m)" +
	`^// ([A-Za-z]+(?:Event|Command)) is (a dispatch event|an event|a command)` +
	`(?:` +
	` for ([A-Z_]+)` + "|" +
	` for Op (\d+)` +
	`)?` +
	`\.(?:.|\n)*?\ntype ([A-Za-z]+(?:Event|Command)) .*`)

type eventType struct {
	StructName string
	EventName  string
	IsDispatch bool
	OpCode     int
}

// MethodRecv returns the receiver name for the generated methods.
func (t *eventType) MethodRecv() string {
	if t.StructName == "" {
		return "e"
	}
	return string(unicode.ToLower([]rune(t.StructName)[0]))
}

type genFile struct {
	PackageName string
	EventTypes  []eventType
}

func main() {
	pkgName := flag.String("p", "gateway", "package name for the generated file")
	outPath := flag.String("o", "-", "output path, - for stdout")
	flag.Parse()

	gen := genFile{PackageName: *pkgName}

	dir, err := os.ReadDir(".")
	if err != nil {
		log.Fatalln("cannot read current directory:", err)
	}

	for _, ent := range dir {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".go") {
			continue
		}

		types, err := scanFile(ent.Name())
		if err != nil {
			log.Fatalln("cannot scan", ent.Name()+":", err)
		}

		gen.EventTypes = append(gen.EventTypes, types...)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, &gen); err != nil {
		log.Fatalln("cannot render template:", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalln("cannot gofmt rendered source:", err)
	}

	if *outPath == "-" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*outPath, src, 0666); err != nil {
		log.Fatalln("cannot write output:", err)
	}
}

func scanFile(name string) ([]eventType, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read file")
	}

	var types []eventType

	for _, m := range payloadDoc.FindAllSubmatch(b, -1) {
		if string(m[1]) != string(m[5]) {
			continue
		}

		if strings.HasSuffix(string(m[1]), "Command") && string(m[2]) != "a command" {
			log.Printf("%s: unexpected doc comment form %q", m[1], m[2])
			continue
		}

		t := eventType{
			StructName: string(m[1]),
			EventName:  string(m[3]),
			IsDispatch: string(m[2]) == "a dispatch event",
			OpCode:     -1,
		}

		if op := string(m[4]); op != "" && !t.IsDispatch {
			i, err := strconv.Atoi(op)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot parse Op for %s", t.StructName)
			}
			t.OpCode = i
		}

		if t.IsDispatch && t.EventName == "" {
			t.EventName = screamingSnake(t.StructName)
		}

		types = append(types, t)
	}

	return types, nil
}

// screamingSnake derives the wire event name from a struct name, so
// MessageCreateEvent becomes MESSAGE_CREATE.
func screamingSnake(structName string) string {
	name := strings.TrimSuffix(structName, "Event")

	var out strings.Builder
	out.Grow(len(name) * 2)

	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			out.WriteByte('_')
		}
		out.WriteRune(unicode.ToUpper(r))
	}

	return out.String()
}
