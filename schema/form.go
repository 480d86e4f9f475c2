package schema

import "github.com/BaSui01/agentport/types"

// AgentFormSchema generates the JSON Schema that UI form builders render
// when editing an agent spec. The schema mirrors ValidateAgent: a document
// the form accepts is a document the validator accepts.
func AgentFormSchema() *types.JSONSchema {
	providers := make([]any, 0, len(types.KnownProviders))
	for _, p := range types.KnownProviders {
		providers = append(providers, string(p))
	}

	zero := 0.0
	two := 2.0
	one := 1.0

	toolSchema := types.NewObjectSchema().
		AddProperty("name", types.NewStringSchema().WithDescription("Tool name")).
		AddProperty("description", types.NewStringSchema()).
		AddProperty("parameters", types.NewObjectSchema().WithDescription("JSON Schema of the tool's arguments")).
		AddRequired("name")

	memorySchema := types.NewObjectSchema().
		AddProperty("kind", types.NewEnumSchema(
			string(types.MemoryShortTerm), string(types.MemoryLongTerm), string(types.MemoryBoth),
		)).
		AddProperty("capacity", &types.JSONSchema{Type: types.SchemaTypeInteger, Minimum: &zero}).
		AddRequired("kind")

	return types.NewObjectSchema().
		WithDescription("Provider-agnostic agent description").
		AddProperty("id", types.NewStringSchema().WithDescription("Unique agent identifier")).
		AddProperty("name", types.NewStringSchema().WithDescription("Display name")).
		AddProperty("description", types.NewStringSchema()).
		AddProperty("version", types.NewStringSchema()).
		AddProperty("provider", types.NewEnumSchema(providers...).WithDescription("LLM provider")).
		AddProperty("model", types.NewStringSchema().WithDescription("Model identifier")).
		AddProperty("temperature", &types.JSONSchema{Type: types.SchemaTypeNumber, Minimum: &zero, Maximum: &two, Default: 1.0}).
		AddProperty("top_p", &types.JSONSchema{Type: types.SchemaTypeNumber, Minimum: &zero, Maximum: &one}).
		AddProperty("max_tokens", &types.JSONSchema{Type: types.SchemaTypeInteger, Minimum: &zero}).
		AddProperty("system_prompt", types.NewStringSchema()).
		AddProperty("tools", types.NewArraySchema(toolSchema)).
		AddProperty("memory", memorySchema).
		AddRequired("id", "name", "provider", "model")
}
