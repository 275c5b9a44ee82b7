package transcriber

import "fmt"

type RegisterData struct {
	Model        string `json:"model"`
	LanguageCode string `json:"language_code"`
}

type FlushData struct {
	Flush bool `json:"flush"`
}

type Result struct {
	Transcription string `json:"transcription"`
	IsFinal       bool   `json:"isFinal"`
}

// ModelInfo describes one engine model size.
type ModelInfo struct {
	Name          string
	Parameters    string
	RelativeSpeed string
	Accuracy      string
}

var models = map[string]ModelInfo{
	"tiny":   {Name: "tiny", Parameters: "39M", RelativeSpeed: "~32x", Accuracy: "lowest"},
	"base":   {Name: "base", Parameters: "74M", RelativeSpeed: "~16x", Accuracy: "low"},
	"small":  {Name: "small", Parameters: "244M", RelativeSpeed: "~6x", Accuracy: "medium"},
	"medium": {Name: "medium", Parameters: "769M", RelativeSpeed: "~2x", Accuracy: "high"},
	"large":  {Name: "large", Parameters: "1550M", RelativeSpeed: "~1x", Accuracy: "highest"},
}

// GetModelInfo returns the description of a known model size.
func GetModelInfo(name string) (ModelInfo, error) {
	info, ok := models[name]
	if !ok {
		return ModelInfo{}, fmt.Errorf("transcriber: unknown model[%s]", name)
	}
	return info, nil
}

// AvailableModels lists the known model sizes from smallest to largest.
func AvailableModels() []string {
	return []string{"tiny", "base", "small", "medium", "large"}
}
