// Package render turns documents into displayable content: the raw Vega-Lite
// JSON with its media type, or a standalone HTML page driven by vega-embed.
package render

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/cli/browser"
	"github.com/hashicorp/go-hclog"

	vegalite "github.com/reoring/vegalite"
)

// MimeType is the media type of serialized Vega-Lite v3 documents.
const MimeType = "application/vnd.vegalite.v3+json"

// ContentInfo is serialized content tagged with its media type.
type ContentInfo struct {
	Content  string
	MimeType string
}

// Content serializes doc.
func Content(doc vegalite.Document) (ContentInfo, error) {
	b, err := vegalite.Marshal(doc)
	if err != nil {
		return ContentInfo{}, err
	}
	return ContentInfo{Content: string(b), MimeType: MimeType}, nil
}

// PageOptions configures the HTML page.
type PageOptions struct {
	Title string
	// Script URLs; empty fields fall back to the jsDelivr releases Vega-Lite 3
	// works with.
	VegaURL      string
	VegaLiteURL  string
	VegaEmbedURL string
}

func (o PageOptions) withDefaults() PageOptions {
	if o.Title == "" {
		o.Title = "Vega-Lite"
	}
	if o.VegaURL == "" {
		o.VegaURL = "https://cdn.jsdelivr.net/npm/vega@5"
	}
	if o.VegaLiteURL == "" {
		o.VegaLiteURL = "https://cdn.jsdelivr.net/npm/vega-lite@3"
	}
	if o.VegaEmbedURL == "" {
		o.VegaEmbedURL = "https://cdn.jsdelivr.net/npm/vega-embed@4"
	}
	return o
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="{{.VegaURL}}"></script>
  <script src="{{.VegaLiteURL}}"></script>
  <script src="{{.VegaEmbedURL}}"></script>
</head>
<body>
<div id="vis"></div>
<script type="text/javascript">
  var spec = {{.Spec}};
  vegaEmbed('#vis', spec).catch(console.error);
</script>
</body>
</html>
`))

// HTMLPage renders doc into a self-contained page.
func HTMLPage(doc vegalite.Document, opts PageOptions) (string, error) {
	info, err := Content(doc)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, struct {
		PageOptions
		Spec template.JS
	}{opts.withDefaults(), scriptJSON(info.Content)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scriptJSON makes serialized JSON safe inside a <script> element. "<" only
// occurs within JSON strings, where \u003c reads back as the same character.
func scriptJSON(js string) template.JS {
	return template.JS(strings.ReplaceAll(js, "<", `\u003c`))
}

// ShowOptions configures Show.
type ShowOptions struct {
	Page   PageOptions
	Dir    string // directory for the page; os.TempDir() when empty
	Logger hclog.Logger
	// Open displays the written file. Defaults to browser.OpenFile.
	Open func(path string) error
}

// Show writes the page to a temporary file and opens it. It returns the path
// of the written file.
func Show(doc vegalite.Document, opts ShowOptions) (string, error) {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	page, err := HTMLPage(doc, opts.Page)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(opts.Dir, "vegalite-*.html")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err := f.WriteString(page); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log.Debug("wrote page", "path", path, "bytes", len(page))

	open := opts.Open
	if open == nil {
		open = browser.OpenFile
	}
	if err := open(path); err != nil {
		log.Warn("could not open browser", "path", path, "error", err)
		return path, err
	}
	log.Info("opened page", "path", path)
	return path, nil
}
