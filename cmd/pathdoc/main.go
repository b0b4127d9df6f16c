// Command pathdoc renders the navigator catalog as an HTML reference
// page: the built-in catalog (core.BuiltinDocs) by default, or that
// catalog extended with a user's own YAML file of NavDoc entries.
//
//	pathdoc > navigators.html
//	pathdoc -extra mynavs.yaml -title "our navigators" > navigators.html
package main

import (
	"flag"
	"log"
	"os"

	"github.com/arborpath/arborpath/core"
	"github.com/arborpath/arborpath/tools"
)

func main() {
	var (
		extra = flag.String("extra", "", "YAML file of additional NavDoc entries")
		title = flag.String("title", "navigators", "page title")
	)
	flag.Parse()

	if *extra == "" {
		if err := tools.RenderNavDocsPage(*title, core.BuiltinDocs, os.Stdout, nil); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := tools.ReadAndRenderNavDocsPage(*extra, *title, os.Stdout, nil); err != nil {
		log.Fatal(err)
	}
}
