package dto

type ReceiptScanResponse struct {
	Amount       string  `json:"amount"`
	Description  string  `json:"description"`
	Merchant     string  `json:"merchant"`
	CategoryName string  `json:"category_name"`
	Date         string  `json:"date"`
	Confidence   float64 `json:"confidence"`
}

type VoiceParseResponse struct {
	Transcript  string  `json:"transcript"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type CommitReceiptRequest struct {
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	CategoryName string `json:"category_name"`
	Date         string `json:"date"`
}
