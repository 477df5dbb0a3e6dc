package offer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/wfap/offerdesk/internal/model"
	"github.com/wfap/offerdesk/pkg/currency"
	"github.com/wfap/offerdesk/pkg/datetime"
)

const (
	ratePlaces   = 2
	moneyPlaces  = 2
	scorePlaces  = 1
	factorJoiner = "; "
)

var hundred = decimal.NewFromInt(100)

// Bounds on numeric input. Formatting rescales the coefficient to the exponent,
// so an unbounded exponent costs unbounded time and memory.
const (
	maxNumberLen   = 40
	maxNumberScale = 30
)

// offerNamespace seeds synthetic offer ids for records that arrive without one.
var offerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:wfap:offer"))

// Normalizer converts raw offers into display models.
type Normalizer struct {
	defaultCurrency currency.Currency
}

// NewNormalizer creates a Normalizer that formats amounts in defaultCurrency
// unless an offer names its own.
func NewNormalizer(defaultCurrency currency.Currency) *Normalizer {
	if _, ok := currency.GetInfo(defaultCurrency); !ok {
		defaultCurrency = currency.DefaultCurrency
	}
	return &Normalizer{defaultCurrency: defaultCurrency}
}

// Normalize builds the display model for raw. It has no side effects and never fails:
// absent fields resolve to StatusMissing and unusable ones to StatusMalformed,
// each with a display placeholder.
func (n *Normalizer) Normalize(raw RawOffer) model.NormalizedOffer {
	cur := n.defaultCurrency
	if c := raw.get(keyCurrency); c.Type == gjson.String && currency.IsValid(strings.ToUpper(strings.TrimSpace(c.Str))) {
		cur = currency.Parse(c.Str)
	}

	bankName := text(raw.get(keyBankName))
	if bankName.Status != model.StatusOK {
		bankName.Display = model.UnknownBank
	}

	return model.NormalizedOffer{
		Key:                   identity(raw),
		BankName:              bankName,
		Currency:              string(cur),
		ApprovedAmount:        money(raw.get(keyApprovedAmount), cur),
		InterestRate:          rate(raw.get(keyInterestRate)),
		CarbonAdjustedRate:    rate(raw.get(keyCarbonAdjustedRate)),
		ProcessingFee:         money(raw.get(keyProcessingFee), cur),
		Collateral:            collateral(raw.get(keyCollateral)),
		RepaymentSchedule:     text(raw.get(keyRepaymentSchedule)),
		GracePeriodDays:       days(raw.get(keyGracePeriodDays)),
		EarlyRepaymentPenalty: penalty(raw.get(keyEarlyRepayment)),
		ValidUntil:            date(raw.get(keyValidUntil)),
		ESG: model.ESG{
			Environmental:      score(raw.get(keyEnvironmental), model.ESGScoreMin, model.ESGScoreMax),
			Social:             score(raw.get(keySocial), model.ESGScoreMin, model.ESGScoreMax),
			Governance:         score(raw.get(keyGovernance), model.ESGScoreMin, model.ESGScoreMax),
			Overall:            score(raw.get(keyOverallESG), model.ESGScoreMin, model.ESGScoreMax),
			CarbonFootprint:    text(raw.get(keyCarbonFootprint)),
			SustainabilityNote: text(raw.get(keySustainability)),
		},
		Risk: model.Risk{
			Rating:            riskRating(raw.first(keyRiskRating, keyRiskRatingAlias)),
			Confidence:        score(raw.get(keyConfidence), model.ConfidenceScoreMin, model.ConfidenceScoreMax),
			KeyRiskFactors:    factors(raw.get(keyKeyRiskFactors)),
			MitigatingFactors: factors(raw.get(keyMitigatingFactors)),
		},
		ESGSummary:       text(raw.get(keyESGSummary)),
		PricingRationale: text(raw.get(keyPricingRationale)),
	}
}

func identity(raw RawOffer) model.OfferKey {
	key := model.OfferKey{
		BankID:  scalar(raw.get(keyBankID)),
		OfferID: scalar(raw.get(keyOfferID)),
	}
	if key.BankID == "" {
		key.BankID = model.UnknownBankID
	}
	if key.OfferID == "" {
		key.OfferID = uuid.NewSHA1(offerNamespace, raw.Bytes()).String()
	}
	return key
}

// scalar returns the trimmed string form of a string or number, or "".
func scalar(res gjson.Result) string {
	switch res.Type {
	case gjson.String:
		return strings.TrimSpace(res.Str)
	case gjson.Number:
		return res.Raw
	default:
		return ""
	}
}

// parseNumber reads a JSON number or numeric string exactly. Values too long or with an
// exponent beyond ±maxNumberScale are malformed.
func parseNumber(res gjson.Result) (decimal.Decimal, model.FieldStatus) {
	if !present(res) {
		return decimal.Zero, model.StatusMissing
	}

	var s string
	switch res.Type {
	case gjson.Number:
		s = res.Raw
	case gjson.String:
		s = strings.TrimSpace(res.Str)
		if s == "" {
			return decimal.Zero, model.StatusMissing
		}
	default:
		return decimal.Zero, model.StatusMalformed
	}

	if len(s) > maxNumberLen {
		return decimal.Zero, model.StatusMalformed
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, model.StatusMalformed
	}
	if exp := d.Exponent(); exp > maxNumberScale || exp < -maxNumberScale {
		return decimal.Zero, model.StatusMalformed
	}
	return d, model.StatusOK
}

func unavailable(status model.FieldStatus) model.Number {
	return model.Number{Display: model.NotAvailable, Status: status}
}

func rate(res gjson.Result) model.Number {
	d, status := parseNumber(res)
	if status != model.StatusOK {
		return unavailable(status)
	}
	return model.Number{
		Value:   d,
		Valid:   true,
		Display: formatRate(d),
		Status:  model.StatusOK,
	}
}

func formatRate(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(ratePlaces) + "%"
}

func money(res gjson.Result, cur currency.Currency) model.Number {
	d, status := parseNumber(res)
	if status != model.StatusOK {
		return unavailable(status)
	}
	return model.Number{
		Value:   d,
		Valid:   true,
		Display: currency.NewMoney(d, cur).FormatFixed(moneyPlaces),
		Status:  model.StatusOK,
	}
}

func score(res gjson.Result, lo, hi decimal.Decimal) model.Score {
	s := model.Score{Min: lo, Max: hi}

	d, status := parseNumber(res)
	if status != model.StatusOK {
		s.Number = unavailable(status)
		return s
	}

	s.Number = model.Number{
		Value:   d,
		Valid:   true,
		Display: d.StringFixed(scorePlaces),
		Status:  model.StatusOK,
	}
	s.InRange = d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi)
	return s
}

func days(res gjson.Result) model.Number {
	d, status := parseNumber(res)
	if status != model.StatusOK {
		return unavailable(status)
	}
	if !d.IsInteger() || d.IsNegative() {
		return unavailable(model.StatusMalformed)
	}

	display := d.String() + " days"
	if d.Equal(decimal.NewFromInt(1)) {
		display = "1 day"
	}
	return model.Number{Value: d, Valid: true, Display: display, Status: model.StatusOK}
}

// penalty accepts a fractional rate, or a boolean from older upstreams.
func penalty(res gjson.Result) model.Number {
	switch res.Type {
	case gjson.True:
		return model.Number{Display: model.PenaltyApplies, Status: model.StatusOK}
	case gjson.False:
		return model.Number{Value: decimal.Zero, Valid: true, Display: model.PenaltyNone, Status: model.StatusOK}
	default:
		return rate(res)
	}
}

func text(res gjson.Result) model.Text {
	if !present(res) {
		return model.Text{Display: model.NotAvailable, Status: model.StatusMissing}
	}

	switch res.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		v := strings.TrimSpace(res.String())
		if v == "" {
			return model.Text{Display: model.NotAvailable, Status: model.StatusMissing}
		}
		return model.Text{Value: v, Display: v, Status: model.StatusOK}
	default:
		return model.Text{Display: model.NotAvailable, Status: model.StatusMalformed}
	}
}

func collateral(res gjson.Result) model.Collateral {
	switch res.Type {
	case gjson.True:
		return collateralFlag(true)
	case gjson.False:
		return collateralFlag(false)
	case gjson.String:
		v := strings.TrimSpace(res.Str)
		if v == "" {
			return model.Collateral{Display: model.NotAvailable, Status: model.StatusMissing}
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return collateralFlag(b)
		}
		// Descriptive collateral ("equipment lien") implies it is required.
		return model.Collateral{Required: true, Detail: v, Display: v, Status: model.StatusOK}
	default:
		if !present(res) {
			return model.Collateral{Display: model.NotAvailable, Status: model.StatusMissing}
		}
		return model.Collateral{Display: model.NotAvailable, Status: model.StatusMalformed}
	}
}

func collateralFlag(required bool) model.Collateral {
	if required {
		return model.Collateral{Required: true, Display: model.CollateralYes, Status: model.StatusOK}
	}
	return model.Collateral{Display: model.CollateralNo, Status: model.StatusOK}
}

func date(res gjson.Result) model.DateField {
	if !present(res) {
		return model.DateField{Display: model.NotAvailable, Status: model.StatusMissing}
	}

	raw := strings.TrimSpace(res.String())
	if raw == "" {
		return model.DateField{Display: model.NotAvailable, Status: model.StatusMissing}
	}

	if res.Type == gjson.String {
		if d, err := datetime.ParseFlexible(raw); err == nil {
			return model.DateField{Date: d, Valid: true, Raw: raw, Display: d.Display(), Status: model.StatusOK}
		}
	}
	return model.DateField{Raw: raw, Display: raw, Status: model.StatusMalformed}
}

func riskRating(res gjson.Result) model.RiskRating {
	if !present(res) {
		return model.RiskRating{Display: model.NotAvailable, Status: model.StatusMissing}
	}

	raw := res.String()
	if strings.TrimSpace(raw) == "" {
		return model.RiskRating{Display: model.NotAvailable, Status: model.StatusMissing}
	}

	switch bucket := model.RiskBucket(strings.ToLower(strings.TrimSpace(raw))); bucket {
	case model.RiskLow, model.RiskMedium, model.RiskHigh:
		return model.RiskRating{
			Value:     raw,
			Bucket:    bucket,
			Canonical: true,
			Display:   string(bucket),
			Status:    model.StatusOK,
		}
	}

	// Non-canonical ratings pass through untouched.
	return model.RiskRating{Value: raw, Display: raw, Status: model.StatusOK}
}

func factors(res gjson.Result) model.FactorList {
	list := model.FactorList{Items: []string{}, Status: model.StatusOK}

	switch {
	case !present(res):
		list.Status = model.StatusMissing
	case res.IsArray():
		for _, item := range res.Array() {
			switch item.Type {
			case gjson.String, gjson.Number, gjson.True, gjson.False:
				if v := strings.TrimSpace(item.String()); v != "" {
					list.Items = append(list.Items, v)
				}
			default:
				list.Status = model.StatusMalformed
			}
		}
	case res.Type == gjson.String:
		if v := strings.TrimSpace(res.Str); v != "" {
			list.Items = append(list.Items, v)
		}
	default:
		list.Status = model.StatusMalformed
	}

	if list.Empty() {
		list.Display = model.NoneReported
	} else {
		list.Display = strings.Join(list.Items, factorJoiner)
	}
	return list
}
