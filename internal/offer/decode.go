package offer

import (
	"bytes"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/wfap/offerdesk/internal/apperror"
	"github.com/wfap/offerdesk/internal/model"
)

// Batch is one response from the offer-issuing service.
type Batch struct {
	IntentID        string
	RequestedAmount *decimal.Decimal
	Offers          []RawOffer
	Repaired        bool // payload needed json repair before it parsed
	Dropped         int  // array elements that were not objects
}

// DecodeBatch splits payload into raw offers. Accepted shapes are a JSON array of offers,
// an envelope {"intent_id", "requested_amount", "offers": [...]}, or a single offer object.
// Lightly malformed JSON (single quotes, trailing commas, code fences) is repaired once.
func DecodeBatch(payload []byte) (Batch, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return Batch{}, apperror.BadRequest("offer payload is empty")
	}

	var batch Batch
	if !gjson.ValidBytes(payload) {
		repaired, err := jsonrepair.RepairJSON(string(payload))
		if err != nil || !gjson.Valid(repaired) {
			return Batch{}, apperror.BadRequest("offer payload is not valid JSON")
		}
		payload = []byte(repaired)
		batch.Repaired = true
	}

	root := gjson.ParseBytes(payload)
	var offers gjson.Result
	switch {
	case root.IsArray():
		offers = root
	case root.IsObject() && root.Get("offers").Exists():
		offers = root.Get("offers")
		if offers.Type != gjson.Null && !offers.IsArray() {
			return Batch{}, apperror.ValidationError("offers", "must be an array")
		}
		batch.IntentID = scalar(root.Get("intent_id"))

		requested, err := requestedAmount(root.Get("requested_amount"))
		if err != nil {
			return Batch{}, err
		}
		batch.RequestedAmount = requested
	case root.IsObject():
		batch.Offers = []RawOffer{NewRawOffer([]byte(root.Raw))}
		return batch, nil
	default:
		return Batch{}, apperror.BadRequest("offer payload must be an array or object")
	}

	for _, item := range offers.Array() {
		if !item.IsObject() {
			batch.Dropped++
			continue
		}
		batch.Offers = append(batch.Offers, NewRawOffer([]byte(item.Raw)))
	}
	return batch, nil
}

func requestedAmount(res gjson.Result) (*decimal.Decimal, error) {
	d, status := parseNumber(res)
	switch status {
	case model.StatusMissing:
		return nil, nil
	case model.StatusMalformed:
		return nil, apperror.ValidationError("requested_amount", "must be a number")
	}
	if !d.IsPositive() {
		return nil, apperror.ValidationError("requested_amount", "must be positive")
	}
	return &d, nil
}
