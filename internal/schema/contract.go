package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Contract is the resolved structured-output contract built from a
// definition: a JSON-Schema document plus its compiled validator. It is
// reusable and safe for concurrent use once built.
type Contract struct {
	Name     string
	doc      map[string]any
	compiled *jsonschema.Schema
}

func newContract(name string, doc map[string]any) (*Contract, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Contract{Name: name, doc: doc, compiled: compiled}, nil
}

// JSONSchema returns the schema document passed to providers as a
// structured-output constraint.
func (c *Contract) JSONSchema() map[string]any {
	return c.doc
}

// PromptJSON renders the schema document for embedding into a prompt.
func (c *Contract) PromptJSON() string {
	b, _ := json.MarshalIndent(c.doc, "", "  ")
	return string(b)
}

// Validate checks a raw JSON document against the contract.
func (c *Contract) Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := c.compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// Decode validates and unmarshals a raw JSON document into a generic mapping.
func (c *Contract) Decode(data []byte) (map[string]any, error) {
	if err := c.Validate(data); err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal instance: %w", err)
	}
	return m, nil
}
