package domain

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeDocument decodes a schemaless document into a typed struct. Field
// names match struct fields case-insensitively or via `mapstructure` tags.
// time.Time values stored by the engine decode into time.Time fields
// directly; RFC 3339 strings are parsed as a fallback.
func DecodeDocument(doc Document, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		DecodeHook: stringToTimeHook,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(map[string]interface{}(doc)); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	return time.Parse(time.RFC3339, data.(string))
}
