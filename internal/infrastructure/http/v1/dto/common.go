// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// FormattedResponse carries a display string.
type FormattedResponse struct {
	Formatted string `json:"formatted"`
}

// ValidationResponse is returned when a draft passes validation.
type ValidationResponse struct {
	Valid bool `json:"valid"`
	Step  int  `json:"step,omitempty"`
}

// optional turns an empty form value into nil so that the calculator applies
// its default.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
