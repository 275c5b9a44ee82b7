package config

type Config struct {
	Profiles []Profile `json:"profiles"`
}

type Profile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Language      string  `json:"language"`
	AnalysisDir   string  `json:"analysis_dir"`
	TranscriptDir string  `json:"transcript_dir"`
	Transcriber   Service `json:"transcriber"`
	Visualization Service `json:"visualization"`
	Redis         Redis   `json:"redis"`
}

type Service struct {
	InUse    bool   `json:"in_use"`
	Endpoint string `json:"endpoint"`
	ApiKey   string `json:"api_key"`
}

type Redis struct {
	InUse          bool   `json:"in_use"`
	Address        string `json:"address"`
	Password       string `json:"password"`
	ResultsChannel string `json:"results_channel"`
}
