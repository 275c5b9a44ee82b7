package visualization

import "github.com/superfeelapi/goEmotion/foundation/report"

type Request struct {
	OutputPath string        `json:"output_path"`
	Report     report.Record `json:"report"`
}

type Response struct {
	ImagePath string `json:"image_path"`
}

type ErrorDetail struct {
	Message string `json:"message"`
}
