package render

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

func barChart() vegalite.Document {
	return vegalite.Document{
		Schema: vegalite.SchemaURL,
		Mark:   vegalite.MarkBar,
		Data:   vegalite.Some(vegalite.Data{URL: vegalite.Ptr("data/a.json")}),
	}
}

func TestContent(t *testing.T) {
	info, err := Content(barChart())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.vegalite.v3+json", info.MimeType)
	assert.Equal(t, `{"$schema":"`+vegalite.SchemaURL+`","data":{"url":"data/a.json"},"mark":"bar"}`, info.Content)
}

func TestHTMLPage(t *testing.T) {
	page, err := HTMLPage(barChart(), PageOptions{Title: "bars"})
	require.NoError(t, err)
	assert.Contains(t, page, "<title>bars</title>")
	assert.Contains(t, page, `<script src="https://cdn.jsdelivr.net/npm/vega-lite@3"></script>`)
	assert.Contains(t, page, `var spec = {"$schema":`)
	assert.Contains(t, page, `vegaEmbed('#vis', spec)`)
}

func TestHTMLPage_ScriptTextStaysInside(t *testing.T) {
	doc := barChart()
	doc.Description = vegalite.Ptr("</script><script>alert(1)</script>")
	page, err := HTMLPage(doc, PageOptions{Title: "<b>bars</b>"})
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(page, "</script>"), "only the page's own script elements close")
	assert.Contains(t, page, `"description":"\u003c/script>\u003cscript>alert(1)\u003c/script>"`)
	assert.Contains(t, page, "<title>&lt;b&gt;bars&lt;/b&gt;</title>")
}

func TestHTMLPage_MissingMark(t *testing.T) {
	_, err := HTMLPage(vegalite.Document{}, PageOptions{})
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/mark", iss[0].Path)
}

func TestShow(t *testing.T) {
	var opened string
	path, err := Show(barChart(), ShowOptions{
		Dir:  t.TempDir(),
		Open: func(p string) error { opened = p; return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, path, opened)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
}

func TestShow_OpenError(t *testing.T) {
	boom := errors.New("no browser")
	path, err := Show(barChart(), ShowOptions{
		Dir:  t.TempDir(),
		Open: func(string) error { return boom },
	})
	require.ErrorIs(t, err, boom)
	assert.FileExists(t, path)
}
