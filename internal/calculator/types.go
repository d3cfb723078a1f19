package calculator

// CalculateRequest is the JSON body for POST /calculator/calculate.
type CalculateRequest struct {
	Phrase     string   `json:"phrase"`
	Operations []string `json:"operations"` // recognised operation entities, in order
	Operand1   float64  `json:"operand1"`
	Operand2   float64  `json:"operand2"`
}

// CalculateResponse is the JSON response for POST /calculator/calculate.
type CalculateResponse struct {
	Text            string `json:"text"`
	Result          Result `json:"result"`
	FollowUpCounter string `json:"follow_up_counter"`
}

// OperationRequest is the JSON body for POST /calculator/operations/{op}.
type OperationRequest struct {
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Phrase string  `json:"phrase"` // disambiguates subtract and inverse_divide
}

// OperationResponse is the JSON response for POST /calculator/operations/{op}.
type OperationResponse struct {
	Operation Operation `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    Result    `json:"result"`
	Text      string    `json:"text"`
}
