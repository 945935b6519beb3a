package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "union").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":        "invalid type: expected {expected}, got {got}",
		"required":            "required property {field} missing",
		"no_matching_variant": "value matches no alternative of {union}",
		"unknown_key":         "unknown key {key}",
		"duplicate_key":       "duplicate key",
		"parse_error":         "parse error",
		"truncated":           "truncated",
		"builder_finalized":   "builder already finalized",
		"incompatible_schema": "schema {schema} is not compatible with {supported}",
	},
	"ja": {
		"invalid_type":        "型が不正です: 期待 {expected}, 実際 {got}",
		"required":            "必須プロパティ {field} が不足しています",
		"no_matching_variant": "{union} のいずれの候補にも一致しません",
		"unknown_key":         "未知のキー {key} です",
		"duplicate_key":       "キーが重複しています",
		"parse_error":         "解析エラー",
		"truncated":           "打ち切られました",
		"builder_finalized":   "ビルダーは既に確定済みです",
		"incompatible_schema": "スキーマ {schema} は {supported} と互換性がありません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return fill(tmpl, data)
}

// fill replaces {name} placeholders; missing entries render as "?".
func fill(tmpl string, data map[string]string) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:i])
		if v, ok := data[tmpl[i+1:i+j]]; ok {
			b.WriteString(v)
		} else {
			b.WriteString("?")
		}
		tmpl = tmpl[i+j+1:]
	}
	return b.String()
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
