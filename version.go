package vegalite

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/reoring/vegalite/i18n"
)

// SchemaVersion is the Vega-Lite schema release the type graph follows.
const SchemaVersion = "3.4.0"

// SchemaURL is the default value of Document.Schema.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v" + SchemaVersion + ".json"

var currentVersion = semver.MustParse(SchemaVersion)

var (
	// compatConstraint accepts any schema sharing the current major version.
	compatConstraint = mustConstraint(fmt.Sprintf("^%d", currentVersion.Major()))
	schemaURLPattern = regexp.MustCompile(`/vega-lite/v([0-9]+(?:\.[0-9]+){0,2}(?:-[0-9A-Za-z.-]+)?)\.json$`)
)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SchemaVersionOf extracts the version from a Vega-Lite schema URL such as
// https://vega.github.io/schema/vega-lite/v3.json.
func SchemaVersionOf(url string) (*semver.Version, error) {
	m := schemaURLPattern.FindStringSubmatch(url)
	if m == nil {
		return nil, fmt.Errorf("vegalite: %q is not a Vega-Lite schema URL", url)
	}
	return semver.NewVersion(m[1])
}

// IsCompatible reports whether a document declaring url can be read by this
// package.
func IsCompatible(url string) (bool, error) {
	v, err := SchemaVersionOf(url)
	if err != nil {
		return false, err
	}
	return compatConstraint.Check(v), nil
}

// CheckSchema returns an incompatible_schema issue at /$schema when the
// document declares a schema outside the supported major version. An empty
// Schema is accepted because encoding fills in SchemaURL.
func CheckSchema(doc Document) error {
	if doc.Schema == "" {
		return nil
	}
	ok, err := IsCompatible(doc.Schema)
	if err != nil {
		iss := singleIssue(CodeIncompatible, "/$schema", err.Error())
		iss[0].Cause = err
		return iss
	}
	if !ok {
		return singleIssue(CodeIncompatible, "/$schema", i18n.T(CodeIncompatible, map[string]string{
			"schema":    doc.Schema,
			"supported": compatConstraint.String(),
		}))
	}
	return nil
}
