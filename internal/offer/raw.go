// Package offer turns raw offer records from the offer-issuing service into display-ready models.
package offer

import (
	"github.com/tidwall/gjson"
)

// Raw offer keys.
const (
	keyBankID             = "bank_id"
	keyOfferID            = "offer_id"
	keyBankName           = "bank_name"
	keyCurrency           = "currency"
	keyApprovedAmount     = "approved_amount"
	keyInterestRate       = "interest_rate"
	keyCarbonAdjustedRate = "carbon_adjusted_rate"
	keyProcessingFee      = "processing_fee"
	keyCollateral         = "collateral_required"
	keyRepaymentSchedule  = "repayment_schedule"
	keyGracePeriodDays    = "grace_period_days"
	keyEarlyRepayment     = "early_repayment_penalty"
	keyValidUntil         = "offer_valid_until"
	keyESGSummary         = "esg_summary"
	keyPricingRationale   = "pricing_rationale"

	keyEnvironmental   = "esg_score.environmental_score"
	keySocial          = "esg_score.social_score"
	keyGovernance      = "esg_score.governance_score"
	keyOverallESG      = "esg_score.overall_score"
	keyCarbonFootprint = "esg_score.carbon_footprint_category"
	keySustainability  = "esg_score.sustainability_notes"

	keyRiskRating        = "risk_assessment.overall_risk_rating"
	keyRiskRatingAlias   = "risk_assessment.risk_rating"
	keyConfidence        = "risk_assessment.confidence_score"
	keyKeyRiskFactors    = "risk_assessment.key_risk_factors"
	keyMitigatingFactors = "risk_assessment.mitigating_factors"
)

// RawOffer is an untrusted offer record as received from upstream. Lookups never fail:
// a missing key, a wrong shape, or bytes that are not JSON at all all read as absent.
type RawOffer struct {
	data []byte
}

// NewRawOffer wraps a JSON object. The bytes are copied.
func NewRawOffer(data []byte) RawOffer {
	return RawOffer{data: append([]byte(nil), data...)}
}

// Bytes returns the record as received.
func (r RawOffer) Bytes() []byte {
	return r.data
}

func (r RawOffer) get(path string) gjson.Result {
	return gjson.GetBytes(r.data, path)
}

// first returns the first path that is present and not null.
func (r RawOffer) first(paths ...string) gjson.Result {
	for _, p := range paths {
		if res := r.get(p); present(res) {
			return res
		}
	}
	return gjson.Result{}
}

func present(res gjson.Result) bool {
	return res.Exists() && res.Type != gjson.Null
}
