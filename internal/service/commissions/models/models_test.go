package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

func TestFromDomainCommissionList_Summary(t *testing.T) {
	commissions := []*domain.Commission{
		{ID: 1, AffiliateID: 5, BookingID: 10, Amount: 14.4, Status: domain.CommissionPending},
		{ID: 2, AffiliateID: 5, BookingID: 11, Amount: 16, Status: domain.CommissionPaid},
		{ID: 3, AffiliateID: 5, BookingID: 12, Amount: 8, Status: domain.CommissionCancelled},
	}

	resp := FromDomainCommissionList(commissions)

	require.Len(t, resp.Commissions, 3)
	// Отменённая комиссия попадает в список и счётчик, но не в суммы
	assert.Equal(t, 3, resp.Summary.Count)
	assert.Equal(t, 14.4, resp.Summary.Pending)
	assert.Equal(t, 16.0, resp.Summary.Paid)
	assert.Equal(t, 30.4, resp.Summary.Total)
}

func TestFromDomainCommissionList_Empty(t *testing.T) {
	resp := FromDomainCommissionList(nil)

	assert.Empty(t, resp.Commissions)
	assert.Equal(t, 0, resp.Summary.Count)
	assert.Equal(t, 0.0, resp.Summary.Total)
}

func TestToDomainCommissionStatus(t *testing.T) {
	status, err := ToDomainCommissionStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPaid, status)

	_, err = ToDomainCommissionStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
