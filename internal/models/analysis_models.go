package models

type AnalysisRequest struct {
	Review string `json:"review"`
}

// AnalysisResult is the backend's answer. Both fields are pointers because
// the backend's output is relayed unvalidated and either may be missing.
type AnalysisResult struct {
	Sentiment  *string  `json:"sentiment"`
	Confidence *float64 `json:"confidence"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
