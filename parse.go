package vegalite

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"github.com/reoring/vegalite/internal/codec"
	eng "github.com/reoring/vegalite/internal/engine"
)

// model is the compiled-in codec for every type in this package.
var model = codec.New(codec.Config{Unions: unionVariants})

// Parse reads one JSON value from src and decodes it into T. T is any model
// type: a record such as Document, a union interface such as Predicate, or an
// enumeration. Syntax errors are reported before any structural check and
// decoding is all-or-nothing: on error the zero value is returned.
func Parse[T any](ctx context.Context, src Source, opts ...ParseOpt) (T, error) {
	dm, err := parseWithOpt[T](ctx, src, lastOpt(opts))
	if err != nil {
		var zero T
		return zero, err
	}
	return dm.Value, nil
}

// ParseWithMeta is Parse plus presence metadata for every record field.
func ParseWithMeta[T any](ctx context.Context, src Source, opts ...ParseOpt) (Decoded[T], error) {
	opt := normalizeWithMetaOpt(opts)
	dm, err := parseWithOpt[T](ctx, src, opt)
	if err != nil {
		return Decoded[T]{}, err
	}
	dm.Presence = applyPresenceOptions(dm.Presence, opt.Presence, opt.PathRender)
	return dm, nil
}

// ParseReader decodes T from r. When MaxBytes is set the size cap is checked
// before any token is read.
func ParseReader[T any](ctx context.Context, r io.Reader, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		var zero T
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return zero, singleIssue(CodeParseError, "/", err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return zero, singleIssue(CodeTruncated, "/", "max bytes exceeded")
		}
		return Parse[T](ctx, JSONBytes(data), opt)
	}
	return Parse[T](ctx, JSONReader(r), opt)
}

// Unmarshal decodes JSON data into v, which must be a non-nil pointer to a
// model type. Unknown keys are ignored.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return singleIssue(CodeInvalidType, "/", "Unmarshal needs a non-nil pointer")
	}
	raw, err := decodeAnyFromSource(JSONBytes(data), ParseOpt{})
	if err != nil {
		return toIssues(err)
	}
	_, err = decodeValue(raw, rv.Elem(), ParseOpt{})
	return err
}

// FromJSON decodes a Document.
func FromJSON(data []byte) (Document, error) {
	var d Document
	if err := Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}

func parseWithOpt[T any](ctx context.Context, src Source, opt ParseOpt) (Decoded[T], error) {
	if src == nil {
		return Decoded[T]{}, singleIssue(CodeParseError, "/", "nil source")
	}
	if err := ctx.Err(); err != nil {
		return Decoded[T]{}, err
	}
	raw, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return Decoded[T]{}, toIssues(err)
	}
	var out T
	pm, err := decodeValue(raw, reflect.ValueOf(&out).Elem(), opt)
	if err != nil {
		return Decoded[T]{}, err
	}
	return Decoded[T]{Value: out, Presence: pm}, nil
}

func decodeValue(raw any, out reflect.Value, opt ParseOpt) (PresenceMap, error) {
	res := model.Decode(raw, out, codec.DecodeOptions{
		Strict:   opt.Unknown == UnknownStrict,
		FailFast: opt.FailFast,
	})
	if len(res.Issues) > 0 {
		return nil, fromCodecIssues(res.Issues)
	}
	return fromCodecPresence(res.Presence), nil
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

// normalizeWithMetaOpt forces presence collection; Include and Exclude still
// filter the result.
func normalizeWithMetaOpt(opts []ParseOpt) ParseOpt {
	opt := lastOpt(opts)
	opt.Presence.Collect = true
	return opt
}

func decodeAnyFromSource(src Source, opt ParseOpt) (any, error) {
	ts := engineTokenSource(src)
	enf := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
	}
	if enf.Enabled() {
		ts = eng.WrapWithEnforcement(ts, enf)
	}
	return eng.DecodeDocument(ts, src.NumberMode() == NumberFloat64)
}

// toIssues maps engine and driver errors to Issues. Anything that is not
// already an Issue is a parse_error.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: -1})
	}
	it := Issue{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err, Offset: -1}
	var se *json.SyntaxError
	switch {
	case errors.As(err, &se):
		it.Offset = se.Offset
	case errors.Is(err, io.ErrUnexpectedEOF):
		it.Message = "unexpected end of input"
	case errors.Is(err, eng.ErrTrailingData):
		it.Hint = "input must hold exactly one JSON value"
	}
	return AppendIssues(nil, it)
}
