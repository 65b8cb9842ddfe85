package ifsc

import "strings"

// bankNames maps 4-letter IFSC bank codes to institution names. Static
// reference data; extend as banks merge or new codes are assigned.
var bankNames = map[string]string{
	"ABHY": "Abhyudaya Co-operative Bank",
	"AUBL": "AU Small Finance Bank",
	"BARB": "Bank of Baroda",
	"BKID": "Bank of India",
	"CBIN": "Central Bank of India",
	"CITI": "Citibank",
	"CNRB": "Canara Bank",
	"DBSS": "DBS Bank India",
	"DEUT": "Deutsche Bank",
	"FDRL": "Federal Bank",
	"HDFC": "HDFC Bank",
	"HSBC": "HSBC Bank",
	"IBKL": "IDBI Bank",
	"ICIC": "ICICI Bank",
	"IDFB": "IDFC First Bank",
	"IDIB": "Indian Bank",
	"INDB": "IndusInd Bank",
	"IOBA": "Indian Overseas Bank",
	"JAKA": "Jammu and Kashmir Bank",
	"KARB": "Karnataka Bank",
	"KKBK": "Kotak Mahindra Bank",
	"KVBL": "Karur Vysya Bank",
	"MAHB": "Bank of Maharashtra",
	"PSIB": "Punjab and Sind Bank",
	"PUNB": "Punjab National Bank",
	"PYTM": "Paytm Payments Bank",
	"RATN": "RBL Bank",
	"SBIN": "State Bank of India",
	"SCBL": "Standard Chartered Bank",
	"SIBL": "South Indian Bank",
	"UBIN": "Union Bank of India",
	"UCBA": "UCO Bank",
	"UTIB": "Axis Bank",
	"YESB": "Yes Bank",
}

// BankName resolves a 4-letter bank code to the institution name. The
// lookup is case-insensitive. The second return value is false for unknown
// codes.
func BankName(code string) (string, bool) {
	name, ok := bankNames[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}
