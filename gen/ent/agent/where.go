// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProvider, v))
}

// TextModel applies equality check predicate on the "text_model" field. It's identical to TextModelEQ.
func TextModel(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTextModel, v))
}

// VisionModel applies equality check predicate on the "vision_model" field. It's identical to VisionModelEQ.
func VisionModel(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVisionModel, v))
}

// VisionInstruction applies equality check predicate on the "vision_instruction" field. It's identical to VisionInstructionEQ.
func VisionInstruction(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVisionInstruction, v))
}

// TextInstruction applies equality check predicate on the "text_instruction" field. It's identical to TextInstructionEQ.
func TextInstruction(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTextInstruction, v))
}

// OutputSchemaID applies equality check predicate on the "output_schema_id" field. It's identical to OutputSchemaIDEQ.
func OutputSchemaID(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOutputSchemaID, v))
}

// SkipVisionWhenText applies equality check predicate on the "skip_vision_when_text" field. It's identical to SkipVisionWhenTextEQ.
func SkipVisionWhenText(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSkipVisionWhenText, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemperature, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDescription, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldProvider, v))
}

// TextModelEQ applies the EQ predicate on the "text_model" field.
func TextModelEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTextModel, v))
}

// TextModelNEQ applies the NEQ predicate on the "text_model" field.
func TextModelNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTextModel, v))
}

// TextModelIn applies the In predicate on the "text_model" field.
func TextModelIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTextModel, vs...))
}

// TextModelNotIn applies the NotIn predicate on the "text_model" field.
func TextModelNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTextModel, vs...))
}

// TextModelGT applies the GT predicate on the "text_model" field.
func TextModelGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTextModel, v))
}

// TextModelGTE applies the GTE predicate on the "text_model" field.
func TextModelGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTextModel, v))
}

// TextModelLT applies the LT predicate on the "text_model" field.
func TextModelLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTextModel, v))
}

// TextModelLTE applies the LTE predicate on the "text_model" field.
func TextModelLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTextModel, v))
}

// TextModelContains applies the Contains predicate on the "text_model" field.
func TextModelContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTextModel, v))
}

// TextModelHasPrefix applies the HasPrefix predicate on the "text_model" field.
func TextModelHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTextModel, v))
}

// TextModelHasSuffix applies the HasSuffix predicate on the "text_model" field.
func TextModelHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTextModel, v))
}

// TextModelEqualFold applies the EqualFold predicate on the "text_model" field.
func TextModelEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTextModel, v))
}

// TextModelContainsFold applies the ContainsFold predicate on the "text_model" field.
func TextModelContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTextModel, v))
}

// VisionModelEQ applies the EQ predicate on the "vision_model" field.
func VisionModelEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVisionModel, v))
}

// VisionModelNEQ applies the NEQ predicate on the "vision_model" field.
func VisionModelNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldVisionModel, v))
}

// VisionModelIn applies the In predicate on the "vision_model" field.
func VisionModelIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldVisionModel, vs...))
}

// VisionModelNotIn applies the NotIn predicate on the "vision_model" field.
func VisionModelNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldVisionModel, vs...))
}

// VisionModelGT applies the GT predicate on the "vision_model" field.
func VisionModelGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldVisionModel, v))
}

// VisionModelGTE applies the GTE predicate on the "vision_model" field.
func VisionModelGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldVisionModel, v))
}

// VisionModelLT applies the LT predicate on the "vision_model" field.
func VisionModelLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldVisionModel, v))
}

// VisionModelLTE applies the LTE predicate on the "vision_model" field.
func VisionModelLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldVisionModel, v))
}

// VisionModelContains applies the Contains predicate on the "vision_model" field.
func VisionModelContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldVisionModel, v))
}

// VisionModelHasPrefix applies the HasPrefix predicate on the "vision_model" field.
func VisionModelHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldVisionModel, v))
}

// VisionModelHasSuffix applies the HasSuffix predicate on the "vision_model" field.
func VisionModelHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldVisionModel, v))
}

// VisionModelIsNil applies the IsNil predicate on the "vision_model" field.
func VisionModelIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldVisionModel))
}

// VisionModelNotNil applies the NotNil predicate on the "vision_model" field.
func VisionModelNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldVisionModel))
}

// VisionModelEqualFold applies the EqualFold predicate on the "vision_model" field.
func VisionModelEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldVisionModel, v))
}

// VisionModelContainsFold applies the ContainsFold predicate on the "vision_model" field.
func VisionModelContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldVisionModel, v))
}

// VisionInstructionEQ applies the EQ predicate on the "vision_instruction" field.
func VisionInstructionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVisionInstruction, v))
}

// VisionInstructionNEQ applies the NEQ predicate on the "vision_instruction" field.
func VisionInstructionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldVisionInstruction, v))
}

// VisionInstructionIn applies the In predicate on the "vision_instruction" field.
func VisionInstructionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldVisionInstruction, vs...))
}

// VisionInstructionNotIn applies the NotIn predicate on the "vision_instruction" field.
func VisionInstructionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldVisionInstruction, vs...))
}

// VisionInstructionGT applies the GT predicate on the "vision_instruction" field.
func VisionInstructionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldVisionInstruction, v))
}

// VisionInstructionGTE applies the GTE predicate on the "vision_instruction" field.
func VisionInstructionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldVisionInstruction, v))
}

// VisionInstructionLT applies the LT predicate on the "vision_instruction" field.
func VisionInstructionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldVisionInstruction, v))
}

// VisionInstructionLTE applies the LTE predicate on the "vision_instruction" field.
func VisionInstructionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldVisionInstruction, v))
}

// VisionInstructionContains applies the Contains predicate on the "vision_instruction" field.
func VisionInstructionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldVisionInstruction, v))
}

// VisionInstructionHasPrefix applies the HasPrefix predicate on the "vision_instruction" field.
func VisionInstructionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldVisionInstruction, v))
}

// VisionInstructionHasSuffix applies the HasSuffix predicate on the "vision_instruction" field.
func VisionInstructionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldVisionInstruction, v))
}

// VisionInstructionIsNil applies the IsNil predicate on the "vision_instruction" field.
func VisionInstructionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldVisionInstruction))
}

// VisionInstructionNotNil applies the NotNil predicate on the "vision_instruction" field.
func VisionInstructionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldVisionInstruction))
}

// VisionInstructionEqualFold applies the EqualFold predicate on the "vision_instruction" field.
func VisionInstructionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldVisionInstruction, v))
}

// VisionInstructionContainsFold applies the ContainsFold predicate on the "vision_instruction" field.
func VisionInstructionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldVisionInstruction, v))
}

// TextInstructionEQ applies the EQ predicate on the "text_instruction" field.
func TextInstructionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTextInstruction, v))
}

// TextInstructionNEQ applies the NEQ predicate on the "text_instruction" field.
func TextInstructionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTextInstruction, v))
}

// TextInstructionIn applies the In predicate on the "text_instruction" field.
func TextInstructionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTextInstruction, vs...))
}

// TextInstructionNotIn applies the NotIn predicate on the "text_instruction" field.
func TextInstructionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTextInstruction, vs...))
}

// TextInstructionGT applies the GT predicate on the "text_instruction" field.
func TextInstructionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTextInstruction, v))
}

// TextInstructionGTE applies the GTE predicate on the "text_instruction" field.
func TextInstructionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTextInstruction, v))
}

// TextInstructionLT applies the LT predicate on the "text_instruction" field.
func TextInstructionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTextInstruction, v))
}

// TextInstructionLTE applies the LTE predicate on the "text_instruction" field.
func TextInstructionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTextInstruction, v))
}

// TextInstructionContains applies the Contains predicate on the "text_instruction" field.
func TextInstructionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTextInstruction, v))
}

// TextInstructionHasPrefix applies the HasPrefix predicate on the "text_instruction" field.
func TextInstructionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTextInstruction, v))
}

// TextInstructionHasSuffix applies the HasSuffix predicate on the "text_instruction" field.
func TextInstructionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTextInstruction, v))
}

// TextInstructionIsNil applies the IsNil predicate on the "text_instruction" field.
func TextInstructionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTextInstruction))
}

// TextInstructionNotNil applies the NotNil predicate on the "text_instruction" field.
func TextInstructionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTextInstruction))
}

// TextInstructionEqualFold applies the EqualFold predicate on the "text_instruction" field.
func TextInstructionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTextInstruction, v))
}

// TextInstructionContainsFold applies the ContainsFold predicate on the "text_instruction" field.
func TextInstructionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTextInstruction, v))
}

// OutputSchemaIDEQ applies the EQ predicate on the "output_schema_id" field.
func OutputSchemaIDEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOutputSchemaID, v))
}

// OutputSchemaIDNEQ applies the NEQ predicate on the "output_schema_id" field.
func OutputSchemaIDNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldOutputSchemaID, v))
}

// OutputSchemaIDIn applies the In predicate on the "output_schema_id" field.
func OutputSchemaIDIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldOutputSchemaID, vs...))
}

// OutputSchemaIDNotIn applies the NotIn predicate on the "output_schema_id" field.
func OutputSchemaIDNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldOutputSchemaID, vs...))
}

// OutputSchemaIDIsNil applies the IsNil predicate on the "output_schema_id" field.
func OutputSchemaIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldOutputSchemaID))
}

// OutputSchemaIDNotNil applies the NotNil predicate on the "output_schema_id" field.
func OutputSchemaIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldOutputSchemaID))
}

// SkipVisionWhenTextEQ applies the EQ predicate on the "skip_vision_when_text" field.
func SkipVisionWhenTextEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSkipVisionWhenText, v))
}

// SkipVisionWhenTextNEQ applies the NEQ predicate on the "skip_vision_when_text" field.
func SkipVisionWhenTextNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSkipVisionWhenText, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float32) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float32) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float32) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTemperature, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOutputSchema applies the HasEdge predicate on the "output_schema" edge.
func HasOutputSchema() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OutputSchemaTable, OutputSchemaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutputSchemaWith applies the HasEdge predicate on the "output_schema" edge with a given conditions (other predicates).
func HasOutputSchemaWith(preds ...predicate.SchemaDefinition) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newOutputSchemaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractionJob) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSilos applies the HasEdge predicate on the "silos" edge.
func HasSilos() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, SilosTable, SilosPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSilosWith applies the HasEdge predicate on the "silos" edge with a given conditions (other predicates).
func HasSilosWith(preds ...predicate.Silo) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newSilosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolServers applies the HasEdge predicate on the "tool_servers" edge.
func HasToolServers() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, ToolServersTable, ToolServersPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolServersWith applies the HasEdge predicate on the "tool_servers" edge with a given conditions (other predicates).
func HasToolServersWith(preds ...predicate.ToolServer) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newToolServersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
