package schema

import (
	"context"
	"fmt"

	"github.com/mattin-ai/mattin/constants"
)

// Build turns a definition into a reusable structured-output contract,
// resolving nested references through the registry. It is a pure function
// over the definition and the registry lookups.
func Build(ctx context.Context, def *Definition, reg Registry) (*Contract, error) {
	if def == nil {
		return nil, fmt.Errorf("nil definition")
	}
	resolving := map[int]bool{}
	doc, err := buildObject(ctx, def, reg, resolving)
	if err != nil {
		return nil, err
	}
	return newContract(def.Name, doc)
}

// buildObject produces a JSON-Schema object node for one definition.
// resolving holds the ids on the current resolution stack for cycle detection.
func buildObject(ctx context.Context, def *Definition, reg Registry, resolving map[int]bool) (map[string]any, error) {
	if resolving[def.ID] {
		return nil, &CircularError{DefinitionID: def.ID}
	}
	resolving[def.ID] = true
	defer delete(resolving, def.ID)

	props := map[string]any{}
	for _, f := range def.Fields {
		node, err := buildField(ctx, f, reg, resolving)
		if err != nil {
			return nil, err
		}
		props[f.Name] = node
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}, nil
}

func buildField(ctx context.Context, f FieldSpec, reg Registry, resolving map[int]bool) (map[string]any, error) {
	node, err := buildType(ctx, f.Type, f.NestedSchemaID, f.ListItemType, reg, resolving)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	if f.Description != "" {
		node["description"] = f.Description
	}
	return node, nil
}

func buildType(ctx context.Context, t constants.FieldType, nestedID *int, itemType *constants.FieldType, reg Registry, resolving map[int]bool) (map[string]any, error) {
	switch t {
	case constants.FieldTypeString:
		return map[string]any{"type": "string"}, nil
	case constants.FieldTypeInt:
		return map[string]any{"type": "integer"}, nil
	case constants.FieldTypeFloat:
		return map[string]any{"type": "number"}, nil
	case constants.FieldTypeBool:
		return map[string]any{"type": "boolean"}, nil
	case constants.FieldTypeDate:
		return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}, nil
	case constants.FieldTypeList:
		item := constants.FieldTypeString
		if itemType != nil {
			item = *itemType
		}
		if item == constants.FieldTypeList {
			return nil, fmt.Errorf("nested lists are not supported")
		}
		itemNode, err := buildType(ctx, item, nestedID, nil, reg, resolving)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": itemNode}, nil
	case constants.FieldTypeObject:
		if nestedID == nil {
			return nil, fmt.Errorf("object field is missing a nested schema id")
		}
		return resolveNested(ctx, *nestedID, reg, resolving)
	default:
		return nil, fmt.Errorf("unknown field type %q", t)
	}
}

func resolveNested(ctx context.Context, id int, reg Registry, resolving map[int]bool) (map[string]any, error) {
	// Check before the lookup so a self-reference is reported even when the
	// registry is slow or remote.
	if resolving[id] {
		return nil, &CircularError{DefinitionID: id}
	}
	if reg == nil {
		return nil, &NotFoundError{DefinitionID: id}
	}
	nested, err := reg.DefinitionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nested == nil {
		return nil, &NotFoundError{DefinitionID: id}
	}
	return buildObject(ctx, nested, reg, resolving)
}
