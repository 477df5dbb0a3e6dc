package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session holds one user's dashboard state: the latest offer batch and the comparison selection.
// The selection is stored as keys in selection order; see package comparison for its semantics.
type Session struct {
	ID              uuid.UUID         `json:"id"`
	IntentID        string            `json:"intentId,omitempty"`
	RequestedAmount *decimal.Decimal  `json:"requestedAmount,omitempty"`
	Offers          []NormalizedOffer `json:"offers"`
	Selected        []OfferKey        `json:"selected"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastSeenAt      time.Time         `json:"lastSeenAt"`
}

// FindOffer returns the offer with the given key.
func (s *Session) FindOffer(key OfferKey) (NormalizedOffer, bool) {
	for _, o := range s.Offers {
		if o.Key == key {
			return o, true
		}
	}
	return NormalizedOffer{}, false
}

// Clone returns a copy that shares no slices with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Offers = append([]NormalizedOffer(nil), s.Offers...)
	c.Selected = append([]OfferKey(nil), s.Selected...)
	if s.RequestedAmount != nil {
		amount := *s.RequestedAmount
		c.RequestedAmount = &amount
	}
	return &c
}

// ArchivedOffer is a raw offer record kept for the details view.
type ArchivedOffer struct {
	ID         int64           `db:"id" json:"id"`
	SessionID  uuid.UUID       `db:"session_id" json:"sessionId"`
	BankID     string          `db:"bank_id" json:"bankId"`
	OfferID    string          `db:"offer_id" json:"offerId"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
	ReceivedAt time.Time       `db:"received_at" json:"receivedAt"`
}

// Key returns the archived offer's identity.
func (a ArchivedOffer) Key() OfferKey {
	return OfferKey{BankID: a.BankID, OfferID: a.OfferID}
}
