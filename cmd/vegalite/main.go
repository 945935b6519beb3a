// Command vegalite formats, lints and renders Vega-Lite v3 documents.
package main

import "github.com/reoring/vegalite/cmd/vegalite/internal/command"

func main() {
	command.Execute()
}
