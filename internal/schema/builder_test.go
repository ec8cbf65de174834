package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/constants"
)

func intPtr(i int) *int { return &i }

func fieldTypePtr(t constants.FieldType) *constants.FieldType { return &t }

func registryOf(defs ...*Definition) Registry {
	byID := map[int]*Definition{}
	for _, d := range defs {
		byID[d.ID] = d
	}
	return RegistryFunc(func(_ context.Context, id int) (*Definition, error) {
		d, ok := byID[id]
		if !ok {
			return nil, &NotFoundError{DefinitionID: id}
		}
		return d, nil
	})
}

func TestBuildFlatDefinition(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "invoice",
		Fields: []FieldSpec{
			{Name: "title", Type: constants.FieldTypeString, Description: "document title"},
			{Name: "total", Type: constants.FieldTypeFloat},
			{Name: "page_count", Type: constants.FieldTypeInt},
			{Name: "paid", Type: constants.FieldTypeBool},
			{Name: "issued_on", Type: constants.FieldTypeDate},
		},
	}

	contract, err := Build(context.Background(), def, nil)
	require.NoError(t, err)

	doc := contract.JSONSchema()
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])

	props := doc["properties"].(map[string]any)
	require.Len(t, props, 5)
	assert.Equal(t, "string", props["title"].(map[string]any)["type"])
	assert.Equal(t, "document title", props["title"].(map[string]any)["description"])
	assert.Equal(t, "number", props["total"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["page_count"].(map[string]any)["type"])
	assert.Equal(t, "boolean", props["paid"].(map[string]any)["type"])

	date := props["issued_on"].(map[string]any)
	assert.Equal(t, "string", date["type"])
	assert.NotEmpty(t, date["pattern"])
}

func TestBuildEmptyDefinition(t *testing.T) {
	def := &Definition{ID: 1, Name: "empty"}

	contract, err := Build(context.Background(), def, nil)
	require.NoError(t, err)

	props := contract.JSONSchema()["properties"].(map[string]any)
	assert.Empty(t, props)
	require.NoError(t, contract.Validate([]byte(`{}`)))
}

func TestBuildListFields(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "report",
		Fields: []FieldSpec{
			{Name: "tags", Type: constants.FieldTypeList},
			{Name: "scores", Type: constants.FieldTypeList, ListItemType: fieldTypePtr(constants.FieldTypeFloat)},
		},
	}

	contract, err := Build(context.Background(), def, nil)
	require.NoError(t, err)

	props := contract.JSONSchema()["properties"].(map[string]any)

	// default item type is string
	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, "string", tags["items"].(map[string]any)["type"])

	scores := props["scores"].(map[string]any)
	assert.Equal(t, "number", scores["items"].(map[string]any)["type"])
}

func TestBuildNestedListRejected(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "bad",
		Fields: []FieldSpec{
			{Name: "matrix", Type: constants.FieldTypeList, ListItemType: fieldTypePtr(constants.FieldTypeList)},
		},
	}

	_, err := Build(context.Background(), def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrix")
}

func TestBuildNestedObject(t *testing.T) {
	address := &Definition{
		ID:   2,
		Name: "address",
		Fields: []FieldSpec{
			{Name: "city", Type: constants.FieldTypeString},
			{Name: "zip", Type: constants.FieldTypeString},
		},
	}
	person := &Definition{
		ID:   1,
		Name: "person",
		Fields: []FieldSpec{
			{Name: "name", Type: constants.FieldTypeString},
			{Name: "home", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(2)},
			{Name: "offices", Type: constants.FieldTypeList, ListItemType: fieldTypePtr(constants.FieldTypeObject), NestedSchemaID: intPtr(2)},
		},
	}

	contract, err := Build(context.Background(), person, registryOf(address))
	require.NoError(t, err)

	props := contract.JSONSchema()["properties"].(map[string]any)
	home := props["home"].(map[string]any)
	assert.Equal(t, "object", home["type"])
	homeProps := home["properties"].(map[string]any)
	assert.Contains(t, homeProps, "city")
	assert.Contains(t, homeProps, "zip")

	offices := props["offices"].(map[string]any)
	assert.Equal(t, "object", offices["items"].(map[string]any)["type"])
}

func TestBuildSelfReferenceFails(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "node",
		Fields: []FieldSpec{
			{Name: "child", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(1)},
		},
	}

	_, err := Build(context.Background(), def, registryOf(def))
	require.Error(t, err)
	var circular *CircularError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, 1, circular.DefinitionID)
}

func TestBuildMutualCycleFails(t *testing.T) {
	a := &Definition{
		ID:   1,
		Name: "a",
		Fields: []FieldSpec{
			{Name: "b", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(2)},
		},
	}
	b := &Definition{
		ID:   2,
		Name: "b",
		Fields: []FieldSpec{
			{Name: "a", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(1)},
		},
	}

	_, err := Build(context.Background(), a, registryOf(a, b))
	var circular *CircularError
	require.ErrorAs(t, err, &circular)
}

// The same nested definition used twice on different branches is not a cycle.
func TestBuildDiamondReferenceSucceeds(t *testing.T) {
	leaf := &Definition{
		ID:     3,
		Name:   "leaf",
		Fields: []FieldSpec{{Name: "v", Type: constants.FieldTypeString}},
	}
	root := &Definition{
		ID:   1,
		Name: "root",
		Fields: []FieldSpec{
			{Name: "left", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(3)},
			{Name: "right", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(3)},
		},
	}

	_, err := Build(context.Background(), root, registryOf(leaf))
	require.NoError(t, err)
}

func TestBuildMissingNestedDefinition(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "broken",
		Fields: []FieldSpec{
			{Name: "ref", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(99)},
		},
	}

	_, err := Build(context.Background(), def, registryOf())
	require.Error(t, err)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.DefinitionID)
}

func TestBuildObjectWithoutNestedID(t *testing.T) {
	def := &Definition{
		ID:     1,
		Name:   "broken",
		Fields: []FieldSpec{{Name: "ref", Type: constants.FieldTypeObject}},
	}

	_, err := Build(context.Background(), def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested schema id")
}

func TestBuildRegistryErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	reg := RegistryFunc(func(context.Context, int) (*Definition, error) {
		return nil, boom
	})
	def := &Definition{
		ID:     1,
		Name:   "d",
		Fields: []FieldSpec{{Name: "ref", Type: constants.FieldTypeObject, NestedSchemaID: intPtr(2)}},
	}

	_, err := Build(context.Background(), def, reg)
	require.ErrorIs(t, err, boom)
}

func TestContractValidateAndDecode(t *testing.T) {
	def := &Definition{
		ID:   1,
		Name: "invoice",
		Fields: []FieldSpec{
			{Name: "title", Type: constants.FieldTypeString},
			{Name: "page_count", Type: constants.FieldTypeInt},
			{Name: "issued_on", Type: constants.FieldTypeDate},
		},
	}
	contract, err := Build(context.Background(), def, nil)
	require.NoError(t, err)

	good := []byte(`{"title":"report","page_count":3,"issued_on":"2026-01-31"}`)
	m, err := contract.Decode(good)
	require.NoError(t, err)
	assert.Equal(t, "report", m["title"])

	assert.Error(t, contract.Validate([]byte(`{"page_count":"three"}`)), "wrong type")
	assert.Error(t, contract.Validate([]byte(`{"issued_on":"31/01/2026"}`)), "date pattern")
	assert.Error(t, contract.Validate([]byte(`{"extra":true}`)), "additionalProperties")
	assert.Error(t, contract.Validate([]byte(`not json`)))
}
