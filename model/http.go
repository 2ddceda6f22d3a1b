package model

type AnalyzeRequestBody struct {
	Notes  Notes   `json:"notes"`
	Params *Params `json:"params"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
