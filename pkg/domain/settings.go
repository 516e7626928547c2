package domain

const ModelPreferenceKey = "model"

// DefaultSystemPrompt is the base instruction sent as the system turn when
// the user has not loaded an override file.
const DefaultSystemPrompt = `You are a helpful data assistant embedded in a dashboard. ` +
	`Answer concisely. When you include code, wrap it in triple-backtick fences ` +
	`with the language on the first line.`
