package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wfap/offerdesk/pkg/datetime"
)

// Display placeholders.
const (
	NotAvailable   = "N/A"
	NoneReported   = "none reported"
	UnknownBank    = "Unknown Bank"
	UnknownBankID  = "unknown"
	CollateralYes  = "Required"
	CollateralNo   = "Not Required"
	PenaltyNone    = "None"
	PenaltyApplies = "Yes"
)

// FieldStatus records how a display field was resolved.
type FieldStatus string

const (
	StatusOK        FieldStatus = "ok"
	StatusMissing   FieldStatus = "missing"   // absent in the raw record, default substituted
	StatusMalformed FieldStatus = "malformed" // present but unusable, fallback substituted
)

// RiskBucket is one of the canonical risk ratings.
type RiskBucket string

const (
	RiskLow    RiskBucket = "low"
	RiskMedium RiskBucket = "medium"
	RiskHigh   RiskBucket = "high"
)

// Score ranges for UI bounds checking.
var (
	ESGScoreMin        = decimal.Zero
	ESGScoreMax        = decimal.NewFromInt(10)
	ConfidenceScoreMin = decimal.Zero
	ConfidenceScoreMax = decimal.NewFromInt(100)
)

// OfferKey identifies an offer across banks. It is the comparison selection key.
type OfferKey struct {
	BankID  string `json:"bankId"`
	OfferID string `json:"offerId"`
}

func (k OfferKey) String() string {
	return fmt.Sprintf("%s/%s", k.BankID, k.OfferID)
}

// Number is a numeric display field: amount, rate, count.
type Number struct {
	Value   decimal.Decimal `json:"value"`
	Valid   bool            `json:"valid"`
	Display string          `json:"display"`
	Status  FieldStatus     `json:"status"`
}

// Score is a bounded numeric rating.
type Score struct {
	Number
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
	InRange bool            `json:"inRange"`
}

// Text is a free-form string field.
type Text struct {
	Value   string      `json:"value"`
	Display string      `json:"display"`
	Status  FieldStatus `json:"status"`
}

// DateField is a parsed calendar date. Raw keeps the upstream string.
type DateField struct {
	Date    datetime.Date `json:"date"`
	Valid   bool          `json:"valid"`
	Raw     string        `json:"raw,omitempty"`
	Display string        `json:"display"`
	Status  FieldStatus   `json:"status"`
}

// Collateral captures the boolean-or-description collateral field.
type Collateral struct {
	Required bool        `json:"required"`
	Detail   string      `json:"detail,omitempty"`
	Display  string      `json:"display"`
	Status   FieldStatus `json:"status"`
}

// RiskRating is the overall risk rating. Canonical is false for values outside the three buckets;
// callers should style those neutrally.
type RiskRating struct {
	Value     string      `json:"value"`
	Bucket    RiskBucket  `json:"bucket,omitempty"`
	Canonical bool        `json:"canonical"`
	Display   string      `json:"display"`
	Status    FieldStatus `json:"status"`
}

// FactorList is an ordered list of risk or mitigating factors.
type FactorList struct {
	Items   []string    `json:"items"`
	Display string      `json:"display"`
	Status  FieldStatus `json:"status"`
}

// Empty reports whether no factors were reported.
func (f FactorList) Empty() bool {
	return len(f.Items) == 0
}

// ESG is the normalized ESG block.
type ESG struct {
	Environmental      Score `json:"environmental"`
	Social             Score `json:"social"`
	Governance         Score `json:"governance"`
	Overall            Score `json:"overall"`
	CarbonFootprint    Text  `json:"carbonFootprint"`
	SustainabilityNote Text  `json:"sustainabilityNote"`
}

// Risk is the normalized risk assessment block.
type Risk struct {
	Rating            RiskRating `json:"rating"`
	Confidence        Score      `json:"confidence"`
	KeyRiskFactors    FactorList `json:"keyRiskFactors"`
	MitigatingFactors FactorList `json:"mitigatingFactors"`
}

// NormalizedOffer is the display-ready form of a raw offer. Every field is safe to render as-is.
type NormalizedOffer struct {
	Key                   OfferKey   `json:"key"`
	BankName              Text       `json:"bankName"`
	Currency              string     `json:"currency"`
	ApprovedAmount        Number     `json:"approvedAmount"`
	InterestRate          Number     `json:"interestRate"`
	CarbonAdjustedRate    Number     `json:"carbonAdjustedRate"`
	ProcessingFee         Number     `json:"processingFee"`
	Collateral            Collateral `json:"collateral"`
	RepaymentSchedule     Text       `json:"repaymentSchedule"`
	GracePeriodDays       Number     `json:"gracePeriodDays"`
	EarlyRepaymentPenalty Number     `json:"earlyRepaymentPenalty"`
	ValidUntil            DateField  `json:"validUntil"`
	ESG                   ESG        `json:"esg"`
	Risk                  Risk       `json:"risk"`
	ESGSummary            Text       `json:"esgSummary"`
	PricingRationale      Text       `json:"pricingRationale"`
}

// EffectiveRate returns the ESG-adjusted rate when known, otherwise the headline interest rate.
func (o NormalizedOffer) EffectiveRate() Number {
	if o.CarbonAdjustedRate.Valid {
		return o.CarbonAdjustedRate
	}
	return o.InterestRate
}
