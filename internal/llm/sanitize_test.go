package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONPassthrough(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(ExtractJSON(`{"a":1}`)))
}

func TestExtractJSONCodeFence(t *testing.T) {
	reply := "```json\n{\"title\": \"x\"}\n```"
	assert.JSONEq(t, `{"title":"x"}`, string(ExtractJSON(reply)))
}

func TestExtractJSONBareFence(t *testing.T) {
	reply := "```\n[1, 2, 3]\n```"
	assert.Equal(t, "[1, 2, 3]", string(ExtractJSON(reply)))
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	reply := "Sure! Here is the extraction:\n{\"total\": 12.5}\nLet me know if you need anything else."
	assert.JSONEq(t, `{"total":12.5}`, string(ExtractJSON(reply)))
}

func TestExtractJSONNestedBraces(t *testing.T) {
	reply := `prefix {"outer": {"inner": [1, {"k": "v"}]}} suffix`
	assert.JSONEq(t, `{"outer":{"inner":[1,{"k":"v"}]}}`, string(ExtractJSON(reply)))
}

func TestExtractJSONArrayReply(t *testing.T) {
	reply := "result: [\"a\", \"b\"] done"
	assert.JSONEq(t, `["a","b"]`, string(ExtractJSON(reply)))
}

func TestExtractJSONNoJSONAtAll(t *testing.T) {
	// nothing to find: the caller's schema validation reports the real error
	assert.Equal(t, "no json here", string(ExtractJSON("  no json here  ")))
}

func TestExtractJSONUnbalanced(t *testing.T) {
	assert.Equal(t, `{"broken": tru`, string(ExtractJSON(`{"broken": tru`)))
}
