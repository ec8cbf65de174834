package constants

import "strings"

// FieldType is the declared type of a single schema field.
type FieldType string

const (
	FieldTypeString FieldType = "str"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "bool"
	FieldTypeDate   FieldType = "date"
	FieldTypeList   FieldType = "list"
	FieldTypeObject FieldType = "object" // reference to another schema definition
)

var allFieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeInt,
	FieldTypeFloat,
	FieldTypeBool,
	FieldTypeDate,
	FieldTypeList,
	FieldTypeObject,
}

// FieldTypes returns the allowed field type names for validation.
func FieldTypes() []string {
	result := make([]string, len(allFieldTypes))
	for i, t := range allFieldTypes {
		result[i] = string(t)
	}
	return result
}

// ParseFieldType canonicalizes user input to a known field type.
func ParseFieldType(input string) (FieldType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms accepted from the configuration UI
	synonyms := map[string]FieldType{
		"string":  FieldTypeString,
		"text":    FieldTypeString,
		"integer": FieldTypeInt,
		"number":  FieldTypeFloat,
		"double":  FieldTypeFloat,
		"boolean": FieldTypeBool,
		"array":   FieldTypeList,
		"schema":  FieldTypeObject,
		"nested":  FieldTypeObject,
	}
	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allFieldTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return "", false
}
