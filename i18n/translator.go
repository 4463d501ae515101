package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "bsonType").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "subtype_misuse":
			return "型付きノードに bsonType は指定できません"
		case "dual_designation":
			return "type と bsonType は同時に指定できません"
		case "parse_error":
			return "解析エラー"
		case "invalid_schema":
			return "スキーマが不正です"
		}
	default: // "en"
		switch code {
		case "subtype_misuse":
			return "bsonType override on a typed node"
		case "dual_designation":
			return "node carries both type and bsonType"
		case "parse_error":
			return "input could not be decoded"
		case "invalid_schema":
			return "schema failed draft-4 compilation"
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
