package domain

// Payload is a loosely-typed entity payload: a decoded JSON object plus
// values injected by the transport layer (authenticated user id, path params).
// Entities validate it so that a missing property and a property of the
// wrong type remain distinguishable.
type Payload map[string]any

// RequireStrings checks that every key is present and string-typed.
// All keys are checked for presence before any key is checked for type,
// so a payload with both an absent and a wrongly-typed property reports
// the missing one. Nil and "" count as missing.
func RequireStrings(entity string, p Payload, keys ...string) (map[string]string, error) {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil {
			return nil, NewMissingPropertyError(entity, k)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, NewMissingPropertyError(entity, k)
		}
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, NewWrongTypeError(entity, k)
		}
		out[k] = s
	}
	return out, nil
}
