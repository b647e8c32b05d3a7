package llm

// ModelKind distinguishes hand-curated models from ones discovered via
// the models endpoint.
type ModelKind string

const (
	// KindPredefined models ship with the application.
	KindPredefined ModelKind = "predefined"

	// KindDynamic models were enumerated from the provider at runtime.
	KindDynamic ModelKind = "dynamic"
)

// Model is a selectable model, resolved once at selection time instead
// of re-detecting its origin ad hoc.
type Model struct {
	ID      string
	Name    string
	Kind    ModelKind
	Default bool
}

// predefinedModels is the curated registry shipped with the app.
var predefinedModels = []Model{
	{ID: "openai/gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Kind: KindPredefined, Default: true},
	{ID: "anthropic/claude-3-haiku", Name: "Claude 3 Haiku", Kind: KindPredefined},
	{ID: "meta-llama/llama-3-8b-instruct", Name: "Llama 3 8B", Kind: KindPredefined},
}

// BackupModelID is the known-reliable model used for the one fallback
// retry after a malformed response.
const BackupModelID = "openai/gpt-3.5-turbo"

// PredefinedModels returns the curated model registry.
func PredefinedModels() []Model {
	out := make([]Model, len(predefinedModels))
	copy(out, predefinedModels)
	return out
}

// DefaultModel returns the registry's default model.
func DefaultModel() Model {
	for _, m := range predefinedModels {
		if m.Default {
			return m
		}
	}
	return predefinedModels[0]
}

// ResolveModel maps a model identifier to a Model, preferring the
// predefined registry and falling back to a dynamic entry built from
// the given discovered list. Unknown IDs still resolve (as dynamic) so
// a stored selection keeps working after the provider list changes.
func ResolveModel(id string, discovered []ModelInfo) Model {
	if id == "" {
		return DefaultModel()
	}
	for _, m := range predefinedModels {
		if m.ID == id {
			return m
		}
	}
	for _, d := range discovered {
		if d.ID == id {
			name := d.Name
			if name == "" {
				name = d.ID
			}
			return Model{ID: d.ID, Name: name, Kind: KindDynamic}
		}
	}
	return Model{ID: id, Name: id, Kind: KindDynamic}
}
