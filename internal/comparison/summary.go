package comparison

import (
	"github.com/shopspring/decimal"
	"github.com/wfap/offerdesk/internal/model"
)

// Summary holds aggregate metrics over a full offer set. It is derived on demand and never stored.
type Summary struct {
	TotalOffers   int             `json:"totalOffers"`
	BestRate      model.Number    `json:"bestRate"`
	BestESG       model.Number    `json:"bestEsg"`
	AverageRate   model.Number    `json:"averageRate"`
	ApprovalRatio model.Number    `json:"approvalRatio"`
	BestOffer     *model.OfferKey `json:"bestOffer,omitempty"`
	BestESGOffer  *model.OfferKey `json:"bestEsgOffer,omitempty"`
}

var hundred = decimal.NewFromInt(100)

func notAvailable() model.Number {
	return model.Number{Display: model.NotAvailable, Status: model.StatusMissing}
}

func percentOf(fraction decimal.Decimal, places int32) model.Number {
	return model.Number{
		Value:   fraction,
		Valid:   true,
		Display: fraction.Mul(hundred).StringFixed(places) + "%",
		Status:  model.StatusOK,
	}
}

// Summarize computes the dashboard metrics. The best offer has the lowest effective rate
// (ESG-adjusted, else headline); ties keep the earlier offer. The approval ratio is the mean of
// approved/requested over offers with a known amount, and N/A without a requested amount.
func Summarize(offers []model.NormalizedOffer, requested *decimal.Decimal) Summary {
	s := Summary{
		TotalOffers:   len(offers),
		BestRate:      notAvailable(),
		BestESG:       notAvailable(),
		AverageRate:   notAvailable(),
		ApprovalRatio: notAvailable(),
	}

	var (
		rateSum    decimal.Decimal
		rateCount  int64
		ratioSum   decimal.Decimal
		ratioCount int64
	)

	for i := range offers {
		o := offers[i]

		if r := o.EffectiveRate(); r.Valid {
			rateSum = rateSum.Add(r.Value)
			rateCount++
			if s.BestOffer == nil || r.Value.LessThan(s.BestRate.Value) {
				s.BestRate = r
				s.BestOffer = &offers[i].Key
			}
		}

		if esg := o.ESG.Overall; esg.Valid {
			if s.BestESGOffer == nil || esg.Value.GreaterThan(s.BestESG.Value) {
				s.BestESG = esg.Number
				s.BestESGOffer = &offers[i].Key
			}
		}

		if requested != nil && requested.IsPositive() && o.ApprovedAmount.Valid {
			ratioSum = ratioSum.Add(o.ApprovedAmount.Value.Div(*requested))
			ratioCount++
		}
	}

	if rateCount > 0 {
		s.AverageRate = percentOf(rateSum.Div(decimal.NewFromInt(rateCount)), 2)
	}
	if ratioCount > 0 {
		s.ApprovalRatio = percentOf(ratioSum.Div(decimal.NewFromInt(ratioCount)), 1)
	}
	return s
}
