package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibt_backend/internals/features/tenancy/waitlist/model"
)

func TestValidateTransitionPipeline(t *testing.T) {
	// Happy path for a permanent applicant, end to end.
	steps := []string{
		model.StatusVerificationPending,
		model.StatusPaymentUnlocked,
		model.StatusPaymentReview,
		model.StatusContractPending,
		model.StatusContractReview,
		model.StatusTenant,
	}
	from := model.StatusPending
	for _, to := range steps {
		require.NoError(t, ValidateTransition(from, to, "Permanent"))
		from = to
	}
}

func TestValidateTransitionTenantTypeFork(t *testing.T) {
	// Temporary applicants skip the contract stage.
	assert.NoError(t, ValidateTransition(model.StatusPaymentReview, model.StatusTenant, "Temporary"))
	assert.Error(t, ValidateTransition(model.StatusPaymentReview, model.StatusContractPending, "Temporary"))

	// Permanent applicants must go through it.
	assert.NoError(t, ValidateTransition(model.StatusPaymentReview, model.StatusContractPending, "Permanent"))
	assert.Error(t, ValidateTransition(model.StatusPaymentReview, model.StatusTenant, "Permanent"))
}

func TestValidateTransitionRejectsSkips(t *testing.T) {
	tests := []struct{ from, to string }{
		{model.StatusPending, model.StatusPaymentUnlocked},
		{model.StatusPending, model.StatusTenant},
		{model.StatusVerificationPending, model.StatusPaymentReview},
		{model.StatusTenant, model.StatusPending},
	}
	for _, tt := range tests {
		err := ValidateTransition(tt.from, tt.to, "Permanent")
		require.Error(t, err, "%s to %s should be rejected", tt.from, tt.to)
		var invalid *ErrInvalidTransition
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, IsKnownStatus(model.StatusPending))
	assert.True(t, IsKnownStatus(model.StatusTenant))
	assert.False(t, IsKnownStatus("APPROVED"))
	assert.False(t, IsKnownStatus(""))
}
