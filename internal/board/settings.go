package board

// Settings is ordered front-matter data. Keys keep their document order so a
// load, mutate, save cycle never reshuffles the block.
type Settings []Setting

// Setting is one front-matter entry.
type Setting struct {
	Key   string
	Value SettingValue
}

// SettingValue holds either a scalar string or a nested one-level mapping.
// A non-nil Mapping marks the nested form; String is meaningful otherwise.
type SettingValue struct {
	String  string
	Mapping Settings
}

// IsMapping reports whether the value is a nested mapping.
func (v SettingValue) IsMapping() bool {
	return v.Mapping != nil
}

// Get returns the top-level scalar value for key. Nested mappings and absent
// keys report false.
func (s Settings) Get(key string) (string, bool) {
	for _, e := range s {
		if e.Key == key {
			if e.Value.IsMapping() {
				return "", false
			}
			return e.Value.String, true
		}
	}
	return "", false
}

// GetMapping returns the nested mapping for key, or nil if the key is absent
// or scalar.
func (s Settings) GetMapping(key string) Settings {
	for _, e := range s {
		if e.Key == key {
			return e.Value.Mapping
		}
	}
	return nil
}

// Set replaces the scalar value for key, appending the entry if absent.
func (s Settings) Set(key, value string) Settings {
	for i, e := range s {
		if e.Key == key {
			s[i].Value = SettingValue{String: value}
			return s
		}
	}
	return append(s, Setting{Key: key, Value: SettingValue{String: value}})
}
