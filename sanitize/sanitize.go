package sanitize

// Document sanitizes a decoded schema tree and returns it as a document
// ready to sit under $jsonSchema. Absent input and values with no document
// form yield an empty document.
func Document(v any) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	if doc, ok := Sanitize(v).(map[string]any); ok {
		return doc
	}
	return map[string]any{}
}

// Sanitize rewrites a decoded JSON Schema value into the $jsonSchema
// dialect. Composites are rebuilt bottom-up, primitives pass through
// unchanged, and the input is never mutated. Applying Sanitize to its own
// output returns an equal tree.
func Sanitize(v any) any {
	return sanitizeValue(v, false)
}

func sanitizeValue(v any, inNameMap bool) any {
	switch val := v.(type) {
	case map[string]any:
		return sanitizeNode(val, inNameMap)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item, inNameMap)
		}
		return out
	default:
		return v
	}
}

// sanitizeNode rebuilds one composite. Keys are dropped through the
// keyword allow-list only outside field-name maps; inside one, keys are
// user data and every entry is kept.
func sanitizeNode(node map[string]any, inNameMap bool) map[string]any {
	out := make(map[string]any, len(node))
	for key, val := range node {
		if !inNameMap && !Allowed(key) {
			continue
		}
		out[key] = sanitizeValue(val, namesFields(key, val))
	}
	resolveTypes(out)
	return out
}

// namesFields reports whether the value sitting under key is a map keyed
// by user field names rather than by schema keywords. The decision is
// shape-based and independent of the current context, so a field that
// happens to carry one of these keyword names is classified by what its
// value looks like.
func namesFields(key string, v any) bool {
	switch key {
	case "properties":
		return isSchemaMap(v, true)
	case "patternProperties":
		return isSchemaMap(v, false)
	case "dependencies":
		return isDependencyMap(v)
	}
	return false
}

// isSchemaMap reports whether every value of v is a composite schema node.
// With markedOnly set, each value must additionally declare its kind
// through "type" or "bsonType".
func isSchemaMap(v any, markedOnly bool) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, val := range m {
		child, ok := val.(map[string]any)
		if !ok {
			return false
		}
		if !markedOnly {
			continue
		}
		if _, ok := child["type"]; ok {
			continue
		}
		if _, ok := child["bsonType"]; ok {
			continue
		}
		return false
	}
	return true
}

// isDependencyMap reports whether v matches the two shapes "dependencies"
// accepts for each entry: a list of other field names, or a schema applied
// when the field is present.
func isDependencyMap(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, val := range m {
		switch val.(type) {
		case []any, map[string]any:
		default:
			return false
		}
	}
	return true
}

// resolveTypes rewrites the node's kind designation in place on the
// rebuilt map. Integer and number declarations collapse onto BSON numeric
// aliases, boolean onto "bool", and the generic number result moves back
// under "type" since it is not a BSON alias. Afterwards at most one of
// "type" and "bsonType" is populated. The string assertions keep field-name
// maps inert here: their "type" entries, if any, hold schema nodes rather
// than kind names.
func resolveTypes(node map[string]any) {
	kind, _ := node["type"].(string)
	alias, _ := node["bsonType"].(string)
	switch {
	case kind == "integer" || alias == "integer":
		setAlias(node, resolveInteger(node))
	case kind == "number" || alias == "number":
		setAlias(node, resolveNumber(node))
	case kind == "boolean" || alias == "boolean":
		setAlias(node, TypeBool)
	}
}

func setAlias(node map[string]any, alias string) {
	delete(node, "type")
	if alias == TypeNumber {
		delete(node, "bsonType")
		node["type"] = TypeNumber
		return
	}
	node["bsonType"] = alias
}
