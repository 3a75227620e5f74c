package models

// IntelRequest is the transport request for /api/intel. Mode selects the
// operation; unknown modes fall through to the default response.
type IntelRequest struct {
	Mode    string  `json:"mode" default:"BASIC"`
	Query   string  `json:"query"`
	URL     string  `json:"url"`
	Entry   float64 `json:"entry" default:"100" validate:"gte=0"`
	Capital float64 `json:"capital" default:"10000" validate:"gte=0"`
	RiskPct float64 `json:"risk_pct" default:"1" validate:"gte=0,lte=100"`
}
