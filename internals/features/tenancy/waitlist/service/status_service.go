package service

import (
	"fmt"

	"ibt_backend/internals/features/tenancy/waitlist/model"
	"ibt_backend/internals/helpers/mailer"
)

// ErrInvalidTransition marks a status change the pipeline does not allow.
type ErrInvalidTransition struct {
	From, To string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid application status transition %s → %s", e.From, e.To)
}

// transitions is the closed set of allowed status moves. PAYMENT_REVIEW forks
// on tenant type: permanent applicants go through the contract stage,
// temporary ones may be promoted directly.
var transitions = map[string][]string{
	model.StatusPending:             {model.StatusVerificationPending},
	model.StatusVerificationPending: {model.StatusPaymentUnlocked},
	model.StatusPaymentUnlocked:     {model.StatusPaymentReview},
	model.StatusPaymentReview:       {model.StatusContractPending, model.StatusTenant},
	model.StatusContractPending:     {model.StatusContractReview},
	model.StatusContractReview:      {model.StatusTenant},
	model.StatusTenant:              {},
}

// ValidateTransition checks from → to against the pipeline, including the
// tenant-type fork at PAYMENT_REVIEW.
func ValidateTransition(from, to, tenantType string) error {
	allowed, ok := transitions[from]
	if !ok {
		return &ErrInvalidTransition{From: from, To: to}
	}
	for _, next := range allowed {
		if next != to {
			continue
		}
		if from == model.StatusPaymentReview {
			if to == model.StatusContractPending && tenantType != "Permanent" {
				return &ErrInvalidTransition{From: from, To: to}
			}
			if to == model.StatusTenant && tenantType == "Permanent" {
				return &ErrInvalidTransition{From: from, To: to}
			}
		}
		return nil
	}
	return &ErrInvalidTransition{From: from, To: to}
}

// IsKnownStatus reports whether s belongs to the pipeline at all.
func IsKnownStatus(s string) bool {
	if _, ok := transitions[s]; ok {
		return true
	}
	return false
}

// NotifyStatusChange sends the applicant-facing status mails. Best effort:
// failures are logged by the mailer and never surface to the caller.
func NotifyStatusChange(app *model.TenantApplicationModel, newStatus string) {
	var subject, body string

	switch newStatus {
	case model.StatusPaymentUnlocked:
		subject = "Application Approved - Payment Unlocked"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour application has been approved!\n\n"+
				"Please open the app to view the \"Stall Order of Payment\".\n"+
				"You are required to upload your payment receipt photo for final verification.\n\nThank you!",
			app.TenantApplicationName)
	case model.StatusContractPending:
		subject = "Action Required: Upload Contract"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe have verified your payment.\n"+
				"Since you applied for a Permanent slot, please upload your Signed Contract document via the app to proceed.\n\nThank you!",
			app.TenantApplicationName)
	default:
		return
	}

	mailer.SendAsync(mailer.Message{
		To:      app.TenantApplicationEmail,
		Subject: subject,
		Body:    body,
	})
}
