package offer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfap/offerdesk/internal/apperror"
)

func TestDecodeBatch_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		offers    int
		dropped   int
		intentID  string
		requested string
	}{
		{
			name:    "array",
			payload: `[{"bank_id": "a"}, {"bank_id": "b"}]`,
			offers:  2,
		},
		{
			name:      "envelope",
			payload:   `{"intent_id": "int-9", "requested_amount": 1000000, "offers": [{"bank_id": "a"}], "banks_contacted": 3}`,
			offers:    1,
			intentID:  "int-9",
			requested: "1000000",
		},
		{
			name:    "envelope with null offers",
			payload: `{"offers": null}`,
			offers:  0,
		},
		{
			name:    "single offer object",
			payload: `{"bank_id": "a", "approved_amount": 10}`,
			offers:  1,
		},
		{
			name:    "non-object elements dropped",
			payload: `[{"bank_id": "a"}, 3, "x", null]`,
			offers:  1,
			dropped: 3,
		},
		{
			name:    "empty array",
			payload: `[]`,
			offers:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := DecodeBatch([]byte(tt.payload))
			require.NoError(t, err)

			assert.Len(t, batch.Offers, tt.offers)
			assert.Equal(t, tt.dropped, batch.Dropped)
			assert.Equal(t, tt.intentID, batch.IntentID)
			assert.False(t, batch.Repaired)
			if tt.requested == "" {
				assert.Nil(t, batch.RequestedAmount)
			} else {
				require.NotNil(t, batch.RequestedAmount)
				assert.Equal(t, tt.requested, batch.RequestedAmount.String())
			}
		})
	}
}

func TestDecodeBatch_OffersNormalize(t *testing.T) {
	batch, err := DecodeBatch([]byte(`[{"bank_id": "a", "offer_id": "1", "interest_rate": 0.04}]`))
	require.NoError(t, err)
	require.Len(t, batch.Offers, 1)

	o := NewNormalizer("USD").Normalize(batch.Offers[0])
	assert.Equal(t, "a/1", o.Key.String())
	assert.Equal(t, "4.00%", o.InterestRate.Display)
}

func TestDecodeBatch_RepairsTrailingComma(t *testing.T) {
	batch, err := DecodeBatch([]byte(`[{"bank_id": "a", "offer_id": "1",}]`))
	require.NoError(t, err)

	assert.True(t, batch.Repaired)
	require.Len(t, batch.Offers, 1)
	o := NewNormalizer("USD").Normalize(batch.Offers[0])
	assert.Equal(t, "a", o.Key.BankID)
}

func TestDecodeBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		target  error
	}{
		{"empty", "   ", apperror.ErrBadRequest},
		{"scalar root", `42`, apperror.ErrBadRequest},
		{"offers not array", `{"offers": {"bank_id": "a"}}`, apperror.ErrValidation},
		{"requested amount malformed", `{"requested_amount": "many", "offers": []}`, apperror.ErrValidation},
		{"requested amount negative", `{"requested_amount": -5, "offers": []}`, apperror.ErrValidation},
		{"requested amount huge exponent", `{"requested_amount": 1e200000000, "offers": []}`, apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBatch([]byte(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
