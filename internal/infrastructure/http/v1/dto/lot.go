package dto

import "supplierintake/internal/domain/lot"

// LotAnalyzeRequest asks for any combination of the LOT checks.
type LotAnalyzeRequest struct {
	Filename string   `json:"filename"`
	Value    string   `json:"value"`
	Headers  []string `json:"headers"`
	Values   []string `json:"values"`
}

// LotAnalyzeResponse holds the result of each requested check.
type LotAnalyzeResponse struct {
	Filename     *lot.Match          `json:"filename,omitempty"`
	Formatted    string              `json:"formatted,omitempty"`
	Valid        *bool               `json:"valid,omitempty"`
	HasLotColumn *bool               `json:"hasLotColumn,omitempty"`
	Values       *lot.ValuesAnalysis `json:"values,omitempty"`
}
