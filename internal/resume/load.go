package resume

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var entryType = reflect.TypeOf(Entry{})

// Load reads resume facts from a YAML (or any viper supported) file.
func Load(path string) (*Facts, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading resume %q: %w", path, err)
	}

	doc, err := Decode(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("decoding resume %q: %w", path, err)
	}

	return NewFacts(doc), nil
}

// Decode converts a generic settings map into a Document.
func Decode(raw map[string]any) (Document, error) {
	var doc Document

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(entryHook),
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return Document{}, fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// entryHook turns a string or a record into an Entry.
func entryHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != entryType {
		return data, nil
	}

	switch value := data.(type) {
	case Entry:
		return value, nil
	case string:
		return Plain(value), nil
	case map[string]any:
		fields := make(map[string]string, len(value))
		for k, v := range value {
			fields[k] = stringify(v)
		}
		return Structured(fields), nil
	case map[any]any:
		fields := make(map[string]string, len(value))
		for k, v := range value {
			fields[fmt.Sprint(k)] = stringify(v)
		}
		return Structured(fields), nil
	case nil:
		return Entry{}, nil
	default:
		return Plain(fmt.Sprint(value)), nil
	}
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(value)
	}
}
