package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "attr" or "format").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_attribute":
			return "属性が存在しません"
		case "invalid_format":
			return "形式が不正です"
		case "invalid_type":
			return "型が不正です"
		case "cyclic_reference":
			return "循環参照を検出しました"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "duplicate_schema":
			return "スキーマ名が重複しています"
		case "unknown_kind":
			return "未知のフィールド種別です"
		case "unresolved_ref":
			return "スキーマ参照が未解決です"
		case "dump_error":
			return "ダンプエラー"
		}
	default: // "en"
		switch code {
		case "missing_attribute":
			return "source attribute missing"
		case "invalid_format":
			return "invalid format"
		case "invalid_type":
			return "invalid type"
		case "cyclic_reference":
			return "cyclic reference"
		case "duplicate_field":
			return "duplicate field name"
		case "duplicate_schema":
			return "duplicate schema name"
		case "unknown_kind":
			return "unknown field kind"
		case "unresolved_ref":
			return "unresolved schema reference"
		case "dump_error":
			return "dump error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
