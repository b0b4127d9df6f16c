// Package tools renders the navigator catalog (core.BuiltinDocs, plus
// any user-defined entries) as an HTML reference page — a Go-native
// stand-in for the teacher's generated spec documentation
// (tools/spec-html.go), with blackfriday rendering the prose the way
// the teacher's tooling renders a Spec's Markdown doc strings.
package tools

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/arborpath/arborpath/core"

	"github.com/jsccast/yaml"
	md "github.com/russross/blackfriday/v2"
)

// RenderNavDocsHTML writes a table of navigator documentation, one
// row per NavDoc, with each Doc string rendered from Markdown.
func RenderNavDocsHTML(docs []core.NavDoc, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<table class="navDocs">`)
	for _, d := range docs {
		f(`<tr class="navDoc"><td><span id="%s" class="navName">%s</span>`, d.Name, d.Name)
		for _, p := range d.Params {
			f(`<span class="navParam">%s</span>`, p)
		}
		f(`</td><td><div class="navDoc doc">%s</div></td></tr>`, md.Run([]byte(d.Doc)))
	}
	f(`</table>`)

	return nil
}

// RenderNavDocsPage wraps RenderNavDocsHTML in a minimal standalone
// HTML document.
func RenderNavDocsPage(title string, docs []core.NavDoc, out io.Writer, cssFiles []string) error {
	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, title)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>%s</h1>
`, title)

	if err := RenderNavDocsHTML(docs, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)
	return nil
}

// ReadAndRenderNavDocsPage reads a YAML file holding a list of
// additional NavDoc entries (name, params, doc), appends them to the
// built-in catalog, and renders the combined page.
func ReadAndRenderNavDocsPage(filename string, title string, out io.Writer, cssFiles []string) error {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}

	var extra []core.NavDoc
	if err := yaml.Unmarshal(bs, &extra); err != nil {
		return err
	}

	docs := make([]core.NavDoc, 0, len(core.BuiltinDocs)+len(extra))
	docs = append(docs, core.BuiltinDocs...)
	docs = append(docs, extra...)

	return RenderNavDocsPage(title, docs, out, cssFiles)
}
