package processor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column keys after header normalization.
const (
	colPolicyNumber = "policy_number"
	colInsurer      = "insurer"
	colEndDate      = "end_date"
	colStartDate    = "start_date"
	colMobile       = "mobile"
	colRegistration = "registration"
	colMake         = "make"
	colModel        = "model"
	colPremium      = "premium"
	colNCB          = "ncb"
	colCustomerName = "customer_name"
	colEmail        = "email"
)

// headerAliases maps every accepted spelling to its canonical key. Lookup
// happens after lowercasing and stripping spaces, underscores and dashes,
// so "Policy Number", "policyNumber" and "policy_number" all land on the
// same entry.
var headerAliases = map[string]string{
	"policynumber": colPolicyNumber,
	"policyno":     colPolicyNumber,

	"insurer":          colInsurer,
	"insurancecompany": colInsurer,

	"expirydate":    colEndDate,
	"expiry":        colEndDate,
	"enddate":       colEndDate,
	"policyenddate": colEndDate,

	"startdate":       colStartDate,
	"policystartdate": colStartDate,

	"mobile":       colMobile,
	"mobilenumber": colMobile,
	"phone":        colMobile,

	"regnumber":           colRegistration,
	"regno":               colRegistration,
	"registration":        colRegistration,
	"registrationnumber":  colRegistration,
	"vehicleregistration": colRegistration,

	"make":        colMake,
	"vehiclemake": colMake,

	"model":        colModel,
	"vehiclemodel": colModel,

	"totalpremium":  colPremium,
	"premium":       colPremium,
	"premiumamount": colPremium,

	"ncb":        colNCB,
	"ncbpercent": colNCB,

	"customername": colCustomerName,
	"name":         colCustomerName,

	"email":        colEmail,
	"emailaddress": colEmail,
}

func normalizeHeader(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	if canonical, ok := headerAliases[key]; ok {
		return canonical
	}
	return key
}

// NormalizeRow rewrites a raw row's keys to their canonical names,
// dropping unrecognized columns untouched under their squashed key.
func NormalizeRow(row map[string]string) map[string]string {
	normalized := make(map[string]string, len(row))
	for header, value := range row {
		normalized[normalizeHeader(header)] = strings.TrimSpace(value)
	}
	return normalized
}

// dateFormats covers ISO dates plus the day-first formats insurer
// portals export.
var dateFormats = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

func parseDate(value string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "₹", "", "%", "", " ", "").Replace(value)
	return decimal.NewFromString(cleaned)
}

// ParsedRow is one import row after parsing and normalization.
type ParsedRow struct {
	CustomerName string
	Mobile       string
	Email        *string

	Registration string
	Make         string
	Model        string

	PolicyNumber  string
	Insurer       string
	StartDate     *time.Time
	EndDate       *time.Time
	PremiumAmount decimal.Decimal
	NCBPercent    decimal.NullDecimal
}

// RowError carries the field and reason for one rejected row.
type RowError struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
}

// parseRow validates one normalized row. rowNum is the 1-based data row
// number reported back to the operator.
func parseRow(rowNum int, row map[string]string) (ParsedRow, *RowError) {
	parsed := ParsedRow{
		CustomerName: row[colCustomerName],
		Mobile:       row[colMobile],
		Registration: row[colRegistration],
		Make:         row[colMake],
		Model:        row[colModel],
		PolicyNumber: row[colPolicyNumber],
		Insurer:      row[colInsurer],
	}

	if parsed.PolicyNumber == "" {
		return ParsedRow{}, &RowError{Row: rowNum, Field: colPolicyNumber, Reason: "missing policy number"}
	}
	if parsed.Mobile == "" {
		return ParsedRow{}, &RowError{Row: rowNum, Field: colMobile, Reason: "missing mobile"}
	}
	if parsed.Registration == "" {
		return ParsedRow{}, &RowError{Row: rowNum, Field: colRegistration, Reason: "missing vehicle registration"}
	}

	endRaw := row[colEndDate]
	if endRaw == "" {
		return ParsedRow{}, &RowError{Row: rowNum, Field: colEndDate, Reason: "missing expiry date"}
	}
	endDate, err := parseDate(endRaw)
	if err != nil {
		return ParsedRow{}, &RowError{Row: rowNum, Field: colEndDate, Reason: err.Error()}
	}
	parsed.EndDate = &endDate

	if startRaw := row[colStartDate]; startRaw != "" {
		startDate, err := parseDate(startRaw)
		if err != nil {
			return ParsedRow{}, &RowError{Row: rowNum, Field: colStartDate, Reason: err.Error()}
		}
		parsed.StartDate = &startDate
	}

	if premiumRaw := row[colPremium]; premiumRaw != "" {
		premium, err := parseAmount(premiumRaw)
		if err != nil {
			return ParsedRow{}, &RowError{Row: rowNum, Field: colPremium, Reason: fmt.Sprintf("unrecognized amount %q", premiumRaw)}
		}
		parsed.PremiumAmount = premium
	}

	if ncbRaw := row[colNCB]; ncbRaw != "" {
		ncb, err := parseAmount(ncbRaw)
		if err != nil {
			return ParsedRow{}, &RowError{Row: rowNum, Field: colNCB, Reason: fmt.Sprintf("unrecognized NCB %q", ncbRaw)}
		}
		parsed.NCBPercent = decimal.NewNullDecimal(ncb)
	}

	if email := row[colEmail]; email != "" {
		parsed.Email = &email
	}

	return parsed, nil
}
