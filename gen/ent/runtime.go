// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mattin-ai/mattin/db/ent/schema"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
	"github.com/mattin-ai/mattin/gen/ent/silo"
	"github.com/mattin-ai/mattin/gen/ent/toolserver"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[0].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescProvider is the schema descriptor for provider field.
	agentDescProvider := agentFields[2].Descriptor()
	// agent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	agent.ProviderValidator = func() func(string) error {
		validators := agentDescProvider.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider string) error {
			for _, fn := range fns {
				if err := fn(provider); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescTextModel is the schema descriptor for text_model field.
	agentDescTextModel := agentFields[3].Descriptor()
	// agent.TextModelValidator is a validator for the "text_model" field. It is called by the builders before save.
	agent.TextModelValidator = agentDescTextModel.Validators[0].(func(string) error)
	// agentDescSkipVisionWhenText is the schema descriptor for skip_vision_when_text field.
	agentDescSkipVisionWhenText := agentFields[8].Descriptor()
	// agent.DefaultSkipVisionWhenText holds the default value on creation for the skip_vision_when_text field.
	agent.DefaultSkipVisionWhenText = agentDescSkipVisionWhenText.Default.(bool)
	// agentDescTemperature is the schema descriptor for temperature field.
	agentDescTemperature := agentFields[9].Descriptor()
	// agent.DefaultTemperature holds the default value on creation for the temperature field.
	agent.DefaultTemperature = agentDescTemperature.Default.(float32)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[10].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[11].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescDocumentName is the schema descriptor for document_name field.
	extractionjobDescDocumentName := extractionjobFields[2].Descriptor()
	// extractionjob.DocumentNameValidator is a validator for the "document_name" field. It is called by the builders before save.
	extractionjob.DocumentNameValidator = extractionjobDescDocumentName.Validators[0].(func(string) error)
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[3].Descriptor()
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = func() func(string) error {
		validators := extractionjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionjobDescPages is the schema descriptor for pages field.
	extractionjobDescPages := extractionjobFields[6].Descriptor()
	// extractionjob.DefaultPages holds the default value on creation for the pages field.
	extractionjob.DefaultPages = extractionjobDescPages.Default.(int)
	// extractionjobDescHasPlainText is the schema descriptor for has_plain_text field.
	extractionjobDescHasPlainText := extractionjobFields[7].Descriptor()
	// extractionjob.DefaultHasPlainText holds the default value on creation for the has_plain_text field.
	extractionjob.DefaultHasPlainText = extractionjobDescHasPlainText.Default.(bool)
	// extractionjobDescStartedAt is the schema descriptor for started_at field.
	extractionjobDescStartedAt := extractionjobFields[9].Descriptor()
	// extractionjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractionjob.DefaultStartedAt = extractionjobDescStartedAt.Default.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	schemadefinitionFields := schema.SchemaDefinition{}.Fields()
	_ = schemadefinitionFields
	// schemadefinitionDescName is the schema descriptor for name field.
	schemadefinitionDescName := schemadefinitionFields[0].Descriptor()
	// schemadefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schemadefinition.NameValidator = schemadefinitionDescName.Validators[0].(func(string) error)
	// schemadefinitionDescCreatedAt is the schema descriptor for created_at field.
	schemadefinitionDescCreatedAt := schemadefinitionFields[1].Descriptor()
	// schemadefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	schemadefinition.DefaultCreatedAt = schemadefinitionDescCreatedAt.Default.(func() time.Time)
	// schemadefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	schemadefinitionDescUpdatedAt := schemadefinitionFields[2].Descriptor()
	// schemadefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schemadefinition.DefaultUpdatedAt = schemadefinitionDescUpdatedAt.Default.(func() time.Time)
	// schemadefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schemadefinition.UpdateDefaultUpdatedAt = schemadefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	schemafieldFields := schema.SchemaField{}.Fields()
	_ = schemafieldFields
	// schemafieldDescName is the schema descriptor for name field.
	schemafieldDescName := schemafieldFields[1].Descriptor()
	// schemafield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schemafield.NameValidator = schemafieldDescName.Validators[0].(func(string) error)
	// schemafieldDescFieldType is the schema descriptor for field_type field.
	schemafieldDescFieldType := schemafieldFields[2].Descriptor()
	// schemafield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	schemafield.FieldTypeValidator = func() func(string) error {
		validators := schemafieldDescFieldType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_type string) error {
			for _, fn := range fns {
				if err := fn(field_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schemafieldDescPosition is the schema descriptor for position field.
	schemafieldDescPosition := schemafieldFields[4].Descriptor()
	// schemafield.DefaultPosition holds the default value on creation for the position field.
	schemafield.DefaultPosition = schemafieldDescPosition.Default.(int)
	// schemafieldDescListItemType is the schema descriptor for list_item_type field.
	schemafieldDescListItemType := schemafieldFields[6].Descriptor()
	// schemafield.ListItemTypeValidator is a validator for the "list_item_type" field. It is called by the builders before save.
	schemafield.ListItemTypeValidator = schemafieldDescListItemType.Validators[0].(func(string) error)
	siloFields := schema.Silo{}.Fields()
	_ = siloFields
	// siloDescName is the schema descriptor for name field.
	siloDescName := siloFields[0].Descriptor()
	// silo.NameValidator is a validator for the "name" field. It is called by the builders before save.
	silo.NameValidator = siloDescName.Validators[0].(func(string) error)
	// siloDescCollection is the schema descriptor for collection field.
	siloDescCollection := siloFields[1].Descriptor()
	// silo.CollectionValidator is a validator for the "collection" field. It is called by the builders before save.
	silo.CollectionValidator = siloDescCollection.Validators[0].(func(string) error)
	// siloDescEmbeddingModel is the schema descriptor for embedding_model field.
	siloDescEmbeddingModel := siloFields[2].Descriptor()
	// silo.EmbeddingModelValidator is a validator for the "embedding_model" field. It is called by the builders before save.
	silo.EmbeddingModelValidator = siloDescEmbeddingModel.Validators[0].(func(string) error)
	// siloDescCreatedAt is the schema descriptor for created_at field.
	siloDescCreatedAt := siloFields[3].Descriptor()
	// silo.DefaultCreatedAt holds the default value on creation for the created_at field.
	silo.DefaultCreatedAt = siloDescCreatedAt.Default.(func() time.Time)
	// siloDescUpdatedAt is the schema descriptor for updated_at field.
	siloDescUpdatedAt := siloFields[4].Descriptor()
	// silo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	silo.DefaultUpdatedAt = siloDescUpdatedAt.Default.(func() time.Time)
	// silo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	silo.UpdateDefaultUpdatedAt = siloDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolserverFields := schema.ToolServer{}.Fields()
	_ = toolserverFields
	// toolserverDescName is the schema descriptor for name field.
	toolserverDescName := toolserverFields[0].Descriptor()
	// toolserver.NameValidator is a validator for the "name" field. It is called by the builders before save.
	toolserver.NameValidator = toolserverDescName.Validators[0].(func(string) error)
	// toolserverDescTransport is the schema descriptor for transport field.
	toolserverDescTransport := toolserverFields[1].Descriptor()
	// toolserver.TransportValidator is a validator for the "transport" field. It is called by the builders before save.
	toolserver.TransportValidator = func() func(string) error {
		validators := toolserverDescTransport.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(transport string) error {
			for _, fn := range fns {
				if err := fn(transport); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// toolserverDescURL is the schema descriptor for url field.
	toolserverDescURL := toolserverFields[2].Descriptor()
	// toolserver.URLValidator is a validator for the "url" field. It is called by the builders before save.
	toolserver.URLValidator = toolserverDescURL.Validators[0].(func(string) error)
	// toolserverDescCreatedAt is the schema descriptor for created_at field.
	toolserverDescCreatedAt := toolserverFields[3].Descriptor()
	// toolserver.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolserver.DefaultCreatedAt = toolserverDescCreatedAt.Default.(func() time.Time)
	// toolserverDescUpdatedAt is the schema descriptor for updated_at field.
	toolserverDescUpdatedAt := toolserverFields[4].Descriptor()
	// toolserver.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	toolserver.DefaultUpdatedAt = toolserverDescUpdatedAt.Default.(func() time.Time)
	// toolserver.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	toolserver.UpdateDefaultUpdatedAt = toolserverDescUpdatedAt.UpdateDefault.(func() time.Time)
}
