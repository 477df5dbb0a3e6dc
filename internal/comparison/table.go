package comparison

import (
	"errors"

	"github.com/wfap/offerdesk/internal/model"
)

// ErrEmptySelection is returned when a table is requested with no offers selected.
// Callers should prompt the user to select offers rather than render an empty table.
var ErrEmptySelection = errors.New("no offers selected for comparison")

// Attribute names a comparable field of a normalized offer.
type Attribute string

const (
	AttrBank            Attribute = "bank"
	AttrApprovedAmount  Attribute = "approved_amount"
	AttrInterestRate    Attribute = "interest_rate"
	AttrCarbonAdjusted  Attribute = "carbon_adjusted_rate"
	AttrProcessingFee   Attribute = "processing_fee"
	AttrCollateral      Attribute = "collateral_required"
	AttrRepayment       Attribute = "repayment_schedule"
	AttrGracePeriod     Attribute = "grace_period_days"
	AttrEarlyRepayment  Attribute = "early_repayment_penalty"
	AttrValidUntil      Attribute = "offer_valid_until"
	AttrEnvironmental   Attribute = "environmental_score"
	AttrSocial          Attribute = "social_score"
	AttrGovernance      Attribute = "governance_score"
	AttrOverallESG      Attribute = "overall_esg_score"
	AttrCarbonFootprint Attribute = "carbon_footprint_category"
	AttrRiskRating      Attribute = "overall_risk_rating"
	AttrConfidence      Attribute = "confidence_score"
)

// Cell is one offer's value for one attribute.
type Cell struct {
	Display string            `json:"display"`
	Status  model.FieldStatus `json:"status"`
}

// Row holds one attribute across all compared offers, in column order.
type Row struct {
	Attribute Attribute `json:"attribute"`
	Label     string    `json:"label"`
	Cells     []Cell    `json:"cells"`
}

// Table is the side-by-side comparison. Columns are in selection order.
type Table struct {
	Columns []model.OfferKey `json:"columns"`
	Rows    []Row            `json:"rows"`
}

type column struct {
	attr  Attribute
	label string
	cell  func(model.NormalizedOffer) Cell
}

func numberCell(n model.Number) Cell { return Cell{Display: n.Display, Status: n.Status} }
func textCell(t model.Text) Cell { return Cell{Display: t.Display, Status: t.Status} }
func scoreCell(s model.Score) Cell { return numberCell(s.Number) }

// attributes fixes the row order of every table.
var attributes = []column{
	{AttrBank, "Bank", func(o model.NormalizedOffer) Cell { return textCell(o.BankName) }},
	{AttrApprovedAmount, "Approved Amount", func(o model.NormalizedOffer) Cell { return numberCell(o.ApprovedAmount) }},
	{AttrInterestRate, "Interest Rate", func(o model.NormalizedOffer) Cell { return numberCell(o.InterestRate) }},
	{AttrCarbonAdjusted, "ESG-Adjusted Rate", func(o model.NormalizedOffer) Cell { return numberCell(o.CarbonAdjustedRate) }},
	{AttrProcessingFee, "Processing Fee", func(o model.NormalizedOffer) Cell { return numberCell(o.ProcessingFee) }},
	{AttrCollateral, "Collateral", func(o model.NormalizedOffer) Cell {
		return Cell{Display: o.Collateral.Display, Status: o.Collateral.Status}
	}},
	{AttrRepayment, "Repayment Schedule", func(o model.NormalizedOffer) Cell { return textCell(o.RepaymentSchedule) }},
	{AttrGracePeriod, "Grace Period", func(o model.NormalizedOffer) Cell { return numberCell(o.GracePeriodDays) }},
	{AttrEarlyRepayment, "Early Repayment Penalty", func(o model.NormalizedOffer) Cell { return numberCell(o.EarlyRepaymentPenalty) }},
	{AttrValidUntil, "Valid Until", func(o model.NormalizedOffer) Cell {
		return Cell{Display: o.ValidUntil.Display, Status: o.ValidUntil.Status}
	}},
	{AttrEnvironmental, "Environmental", func(o model.NormalizedOffer) Cell { return scoreCell(o.ESG.Environmental) }},
	{AttrSocial, "Social", func(o model.NormalizedOffer) Cell { return scoreCell(o.ESG.Social) }},
	{AttrGovernance, "Governance", func(o model.NormalizedOffer) Cell { return scoreCell(o.ESG.Governance) }},
	{AttrOverallESG, "Overall ESG", func(o model.NormalizedOffer) Cell { return scoreCell(o.ESG.Overall) }},
	{AttrCarbonFootprint, "Carbon Footprint", func(o model.NormalizedOffer) Cell { return textCell(o.ESG.CarbonFootprint) }},
	{AttrRiskRating, "Risk Rating", func(o model.NormalizedOffer) Cell {
		return Cell{Display: o.Risk.Rating.Display, Status: o.Risk.Rating.Status}
	}},
	{AttrConfidence, "Confidence", func(o model.NormalizedOffer) Cell { return scoreCell(o.Risk.Confidence) }},
}

// Attributes returns the compared attributes in row order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	for i, c := range attributes {
		out[i] = c.attr
	}
	return out
}

// BuildTable lays the selected offers side by side. Selected keys missing from offers are skipped;
// if none remain, ErrEmptySelection is returned.
func BuildTable(selection Selection, offers []model.NormalizedOffer) (Table, error) {
	byKey := make(map[model.OfferKey]model.NormalizedOffer, len(offers))
	for _, o := range offers {
		if _, dup := byKey[o.Key]; !dup {
			byKey[o.Key] = o
		}
	}

	var selected []model.NormalizedOffer
	for _, k := range selection.keys {
		if o, ok := byKey[k]; ok {
			selected = append(selected, o)
		}
	}
	if len(selected) == 0 {
		return Table{}, ErrEmptySelection
	}

	table := Table{
		Columns: make([]model.OfferKey, len(selected)),
		Rows:    make([]Row, len(attributes)),
	}
	for i, o := range selected {
		table.Columns[i] = o.Key
	}
	for i, c := range attributes {
		row := Row{Attribute: c.attr, Label: c.label, Cells: make([]Cell, len(selected))}
		for j, o := range selected {
			row.Cells[j] = c.cell(o)
		}
		table.Rows[i] = row
	}
	return table, nil
}
