package model

// Case describes the matter under analysis as supplied by the caller
type Case struct {
	Title string `json:"title,omitempty" yaml:"title"` // Short case title or description
	Type  string `json:"type,omitempty" yaml:"type"`   // Case type (e.g., "Civil", "Criminal")
	Facts string `json:"facts" yaml:"facts"`           // Detailed case facts, free text
}
