// Code generated by ent, DO NOT EDIT.

package schemafield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldID, id))
}

// DefinitionID applies equality check predicate on the "definition_id" field. It's identical to DefinitionIDEQ.
func DefinitionID(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldDefinitionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldName, v))
}

// FieldType applies equality check predicate on the "field_type" field. It's identical to FieldTypeEQ.
func FieldType(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldFieldType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldDescription, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldPosition, v))
}

// NestedSchemaID applies equality check predicate on the "nested_schema_id" field. It's identical to NestedSchemaIDEQ.
func NestedSchemaID(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldNestedSchemaID, v))
}

// ListItemType applies equality check predicate on the "list_item_type" field. It's identical to ListItemTypeEQ.
func ListItemType(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldListItemType, v))
}

// DefinitionIDEQ applies the EQ predicate on the "definition_id" field.
func DefinitionIDEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldDefinitionID, v))
}

// DefinitionIDNEQ applies the NEQ predicate on the "definition_id" field.
func DefinitionIDNEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldDefinitionID, v))
}

// DefinitionIDIn applies the In predicate on the "definition_id" field.
func DefinitionIDIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldDefinitionID, vs...))
}

// DefinitionIDNotIn applies the NotIn predicate on the "definition_id" field.
func DefinitionIDNotIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldDefinitionID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContainsFold(FieldName, v))
}

// FieldTypeEQ applies the EQ predicate on the "field_type" field.
func FieldTypeEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldFieldType, v))
}

// FieldTypeNEQ applies the NEQ predicate on the "field_type" field.
func FieldTypeNEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldFieldType, v))
}

// FieldTypeIn applies the In predicate on the "field_type" field.
func FieldTypeIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldFieldType, vs...))
}

// FieldTypeNotIn applies the NotIn predicate on the "field_type" field.
func FieldTypeNotIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldFieldType, vs...))
}

// FieldTypeGT applies the GT predicate on the "field_type" field.
func FieldTypeGT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldFieldType, v))
}

// FieldTypeGTE applies the GTE predicate on the "field_type" field.
func FieldTypeGTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldFieldType, v))
}

// FieldTypeLT applies the LT predicate on the "field_type" field.
func FieldTypeLT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldFieldType, v))
}

// FieldTypeLTE applies the LTE predicate on the "field_type" field.
func FieldTypeLTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldFieldType, v))
}

// FieldTypeContains applies the Contains predicate on the "field_type" field.
func FieldTypeContains(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContains(FieldFieldType, v))
}

// FieldTypeHasPrefix applies the HasPrefix predicate on the "field_type" field.
func FieldTypeHasPrefix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasPrefix(FieldFieldType, v))
}

// FieldTypeHasSuffix applies the HasSuffix predicate on the "field_type" field.
func FieldTypeHasSuffix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasSuffix(FieldFieldType, v))
}

// FieldTypeEqualFold applies the EqualFold predicate on the "field_type" field.
func FieldTypeEqualFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEqualFold(FieldFieldType, v))
}

// FieldTypeContainsFold applies the ContainsFold predicate on the "field_type" field.
func FieldTypeContainsFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContainsFold(FieldFieldType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContainsFold(FieldDescription, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldPosition, v))
}

// NestedSchemaIDEQ applies the EQ predicate on the "nested_schema_id" field.
func NestedSchemaIDEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldNestedSchemaID, v))
}

// NestedSchemaIDNEQ applies the NEQ predicate on the "nested_schema_id" field.
func NestedSchemaIDNEQ(v int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldNestedSchemaID, v))
}

// NestedSchemaIDIn applies the In predicate on the "nested_schema_id" field.
func NestedSchemaIDIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldNestedSchemaID, vs...))
}

// NestedSchemaIDNotIn applies the NotIn predicate on the "nested_schema_id" field.
func NestedSchemaIDNotIn(vs ...int) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldNestedSchemaID, vs...))
}

// NestedSchemaIDIsNil applies the IsNil predicate on the "nested_schema_id" field.
func NestedSchemaIDIsNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIsNull(FieldNestedSchemaID))
}

// NestedSchemaIDNotNil applies the NotNil predicate on the "nested_schema_id" field.
func NestedSchemaIDNotNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotNull(FieldNestedSchemaID))
}

// ListItemTypeEQ applies the EQ predicate on the "list_item_type" field.
func ListItemTypeEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEQ(FieldListItemType, v))
}

// ListItemTypeNEQ applies the NEQ predicate on the "list_item_type" field.
func ListItemTypeNEQ(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNEQ(FieldListItemType, v))
}

// ListItemTypeIn applies the In predicate on the "list_item_type" field.
func ListItemTypeIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIn(FieldListItemType, vs...))
}

// ListItemTypeNotIn applies the NotIn predicate on the "list_item_type" field.
func ListItemTypeNotIn(vs ...string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotIn(FieldListItemType, vs...))
}

// ListItemTypeGT applies the GT predicate on the "list_item_type" field.
func ListItemTypeGT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGT(FieldListItemType, v))
}

// ListItemTypeGTE applies the GTE predicate on the "list_item_type" field.
func ListItemTypeGTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldGTE(FieldListItemType, v))
}

// ListItemTypeLT applies the LT predicate on the "list_item_type" field.
func ListItemTypeLT(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLT(FieldListItemType, v))
}

// ListItemTypeLTE applies the LTE predicate on the "list_item_type" field.
func ListItemTypeLTE(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldLTE(FieldListItemType, v))
}

// ListItemTypeContains applies the Contains predicate on the "list_item_type" field.
func ListItemTypeContains(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContains(FieldListItemType, v))
}

// ListItemTypeHasPrefix applies the HasPrefix predicate on the "list_item_type" field.
func ListItemTypeHasPrefix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasPrefix(FieldListItemType, v))
}

// ListItemTypeHasSuffix applies the HasSuffix predicate on the "list_item_type" field.
func ListItemTypeHasSuffix(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldHasSuffix(FieldListItemType, v))
}

// ListItemTypeIsNil applies the IsNil predicate on the "list_item_type" field.
func ListItemTypeIsNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldIsNull(FieldListItemType))
}

// ListItemTypeNotNil applies the NotNil predicate on the "list_item_type" field.
func ListItemTypeNotNil() predicate.SchemaField {
	return predicate.SchemaField(sql.FieldNotNull(FieldListItemType))
}

// ListItemTypeEqualFold applies the EqualFold predicate on the "list_item_type" field.
func ListItemTypeEqualFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldEqualFold(FieldListItemType, v))
}

// ListItemTypeContainsFold applies the ContainsFold predicate on the "list_item_type" field.
func ListItemTypeContainsFold(v string) predicate.SchemaField {
	return predicate.SchemaField(sql.FieldContainsFold(FieldListItemType, v))
}

// HasDefinition applies the HasEdge predicate on the "definition" edge.
func HasDefinition() predicate.SchemaField {
	return predicate.SchemaField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefinitionWith applies the HasEdge predicate on the "definition" edge with a given conditions (other predicates).
func HasDefinitionWith(preds ...predicate.SchemaDefinition) predicate.SchemaField {
	return predicate.SchemaField(func(s *sql.Selector) {
		step := newDefinitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNestedSchema applies the HasEdge predicate on the "nested_schema" edge.
func HasNestedSchema() predicate.SchemaField {
	return predicate.SchemaField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, NestedSchemaTable, NestedSchemaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNestedSchemaWith applies the HasEdge predicate on the "nested_schema" edge with a given conditions (other predicates).
func HasNestedSchemaWith(preds ...predicate.SchemaDefinition) predicate.SchemaField {
	return predicate.SchemaField(func(s *sql.Selector) {
		step := newNestedSchemaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchemaField) predicate.SchemaField {
	return predicate.SchemaField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchemaField) predicate.SchemaField {
	return predicate.SchemaField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchemaField) predicate.SchemaField {
	return predicate.SchemaField(sql.NotPredicates(p))
}
