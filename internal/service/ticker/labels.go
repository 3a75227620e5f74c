package ticker

// labelMap maps provider symbols to human-readable display names.
var labelMap = map[string]string{
	"GC=F":     "GOLD",
	"CL=F":     "OIL",
	"LIT":      "LITHIUM",
	"^TNX":     "RATES",
	"TSM":      "TSMC",
	"BTC-USD":  "BITCOIN",
	"NVDA":     "NVIDIA",
	"SPY":      "S&P 500",
	"QQQ":      "NASDAQ",
	"^VIX":     "VIX",
	"DX-Y.NYB": "US DOLLAR",
}

// Label returns the display name for a symbol, defaulting to the symbol.
func Label(symbol string) string {
	if l, ok := labelMap[symbol]; ok {
		return l
	}
	return symbol
}
