package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	testCases := []struct {
		status entities.Status
		want   entities.Status
		ok     bool
	}{
		{entities.StatusPending, entities.StatusPaymentReview, true},
		{entities.StatusPaymentReview, entities.StatusPaid, true},
		{entities.StatusPaid, entities.StatusPreparing, true},
		{entities.StatusPreparing, entities.StatusReadyForDelivery, true},
		{entities.StatusReadyForDelivery, entities.StatusShipped, true},
		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusDelivered, "", false},
		{entities.StatusCancelled, "", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			next, ok := tc.status.Next()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, next)
		})
	}
}

func TestStatus_Step(t *testing.T) {
	for i, st := range entities.StatusFlow() {
		assert.Equal(t, i, st.Step())
	}
	assert.Equal(t, -1, entities.StatusCancelled.Step())
	assert.Len(t, entities.StatusFlow(), 7)
}

func TestParseStatus(t *testing.T) {
	st, err := entities.ParseStatus("ready_for_delivery")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReadyForDelivery, st)

	st, err = entities.ParseStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, st)

	_, err = entities.ParseStatus("refunded")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	_, err = entities.ParseStatus("")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	var body struct {
		Status entities.Status `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"shipped"}`), &body))
	assert.Equal(t, entities.StatusShipped, body.Status)

	err := json.Unmarshal([]byte(`{"status":"lost"}`), &body)
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}
