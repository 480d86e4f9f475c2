package n8n

import "github.com/BaSui01/agentport/types"

// credentialKinds is the fixed provider → credential-slot mapping. A
// provider absent from the table gets no credential slot on its node; that
// is a supported outcome, not an error.
var credentialKinds = map[types.Provider]string{
	types.ProviderOpenAI:    "openAiApi",
	types.ProviderAnthropic: "anthropicApi",
	types.ProviderGemini:    "googlePalmApi",
	types.ProviderDeepSeek:  "deepSeekApi",
}

// CredentialKind returns the n8n credential kind for a provider and whether
// the provider has a table entry.
func CredentialKind(p types.Provider) (string, bool) {
	kind, ok := credentialKinds[p]
	return kind, ok
}
