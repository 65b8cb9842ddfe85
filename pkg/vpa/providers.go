package vpa

import "strings"

// providerNames maps UPI handle suffixes to the app or bank operating them.
// Static reference data; handles are assigned by NPCI to PSP banks.
var providerNames = map[string]string{
	"airtel":      "Airtel Payments Bank",
	"apl":         "Amazon Pay",
	"axl":         "PhonePe (Axis Bank)",
	"barodampay":  "Bank of Baroda",
	"fbl":         "Federal Bank",
	"freecharge":  "Freecharge",
	"hsbc":        "HSBC Bank",
	"ibl":         "PhonePe (ICICI Bank)",
	"icici":       "ICICI Bank",
	"idfcbank":    "IDFC First Bank",
	"jupiteraxis": "Jupiter (Axis Bank)",
	"kotak":       "Kotak Mahindra Bank",
	"okaxis":      "Google Pay (Axis Bank)",
	"okhdfcbank":  "Google Pay (HDFC Bank)",
	"okicici":     "Google Pay (ICICI Bank)",
	"oksbi":       "Google Pay (State Bank of India)",
	"paytm":       "Paytm Payments Bank",
	"pnb":         "Punjab National Bank",
	"sbi":         "State Bank of India",
	"upi":         "BHIM",
	"ybl":         "PhonePe (Yes Bank)",
	"yesbank":     "Yes Bank",
}

// ProviderName resolves a UPI handle to the operator name. The lookup is
// case-insensitive. The second return value is false for unknown handles.
func ProviderName(code string) (string, bool) {
	name, ok := providerNames[strings.ToLower(strings.TrimSpace(code))]
	return name, ok
}
