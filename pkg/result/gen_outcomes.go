//go:build ignore

// gen_outcomes 根据 outcomes.tsv 生成 zz_outcome_table.go。
//
// outcomes.tsv 每行：枚举名<TAB>符号名<TAB>后缀<TAB>描述；"# xxx" 行作为分组注释。
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

type row struct {
	Group string // 非空表示分组注释行
	Ident string
	Name  string
	Suf   string
	Desc  string
}

var tpl = template.Must(template.New("t").Parse(`// Code generated from outcomes.tsv by gen_outcomes.go; DO NOT EDIT.

package result

const (
{{- range $i, $r := .Rows}}
{{- if $r.Group}}
	// {{$r.Group}}
{{- else if eq $r.Ident $.First}}
	Outcome{{$r.Ident}} Outcome = iota
{{- else}}
	Outcome{{$r.Ident}}
{{- end}}
{{- end}}

	outcomeCount
)

var outcomeTable = [outcomeCount]Entry{
{{- range .Rows}}{{if not .Group}}
	Outcome{{.Ident}}: {Name: {{printf "%q" .Name}}, Suffix: {{printf "%q" .Suf}}, Description: {{printf "%q" .Desc}}},
{{- end}}{{end}}
}
`))

func main() {
	f, err := os.Open("outcomes.tsv")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var rows []row
	first := ""
	sc := bufio.NewScanner(f)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			continue
		case strings.HasPrefix(line, "#"):
			rows = append(rows, row{Group: strings.TrimSpace(strings.TrimPrefix(line, "#"))})
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 4 {
			log.Fatalf("outcomes.tsv:%d: want 4 columns, got %d", ln, len(cols))
		}
		if first == "" {
			first = cols[0]
		}
		rows = append(rows, row{Ident: cols[0], Name: cols[1], Suf: cols[2], Desc: cols[3]})
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]any{"Rows": rows, "First": first}); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gofmt: %v\n%s", err, buf.String())
	}
	if err := os.WriteFile("zz_outcome_table.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
	n := 0
	for _, r := range rows {
		if r.Group == "" {
			n++
		}
	}
	fmt.Printf("generated %d outcomes\n", n)
}
