package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arborpath/arborpath/core"
)

func TestRenderNavDocsHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderNavDocsHTML(core.BuiltinDocs, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `id="ALL"`) {
		t.Fatalf("expected an ALL entry, got %s", out)
	}
	if !strings.Contains(out, `id="keypath"`) {
		t.Fatalf("expected a keypath entry, got %s", out)
	}
}

func TestRenderNavDocsPage(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderNavDocsPage("navigators", core.BuiltinDocs, &buf, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<html>") {
		t.Fatalf("expected an html document, got %s", out)
	}
	if !strings.Contains(out, "<h1>navigators</h1>") {
		t.Fatalf("expected a title heading, got %s", out)
	}
}
