package domain

// ContextFile references an uploaded artifact whose content may be folded
// into the system prompt. Content is read lazily at assembly time, never
// cached across turns. DisplayName is unique within a session; re-adding a
// name overwrites the prior reference.
type ContextFile struct {
	DisplayName string `json:"display_name"`
	SourcePath  string `json:"-"`
}
