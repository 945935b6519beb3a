package vegalite

import (
	"bytes"
	"errors"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/reoring/vegalite/internal/codec"
)

// UnmarshalYAML decodes the first YAML document in data into v, a non-nil
// pointer to a model type. YAML values are normalized to the JSON tree first,
// so a YAML and a JSON rendering of the same document decode to equal values.
func UnmarshalYAML(data []byte, v any, opts ...ParseOpt) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return singleIssue(CodeInvalidType, "/", "UnmarshalYAML needs a non-nil pointer")
	}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return yamlIssue(err)
	}
	_, err := decodeValue(codec.Normalize(node), rv.Elem(), lastOpt(opts))
	return err
}

// ReadYAMLDocuments decodes every document of a multi-document YAML stream
// into T. Empty documents are skipped.
func ReadYAMLDocuments[T any](r io.Reader, opts ...ParseOpt) ([]T, error) {
	dec := yaml.NewDecoder(r)
	opt := lastOpt(opts)
	var out []T
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, yamlIssue(err)
		}
		if node == nil {
			continue
		}
		var v T
		if _, err := decodeValue(codec.Normalize(node), reflect.ValueOf(&v).Elem(), opt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// IsYAML guesses whether data is YAML rather than JSON by its first
// non-space byte.
func IsYAML(data []byte) bool {
	t := bytes.TrimLeft(data, " \t\r\n")
	return len(t) > 0 && t[0] != '{' && t[0] != '['
}

func yamlIssue(err error) Issues {
	return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err, Offset: -1})
}
