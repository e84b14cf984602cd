package email

import (
	"fmt"

	"github.com/rs/zerolog"
)

// StatusNotifier defines the interface for status-change notifications
type StatusNotifier interface {
	// NotifyStatusChange sends the status template for the given status to
	// the recipient. Returns true only when a message was handed to the
	// transport successfully. Unknown statuses are a no-op returning false.
	NotifyStatusChange(toEmail, status, comments string) bool
}

// Notifier implements StatusNotifier on top of a Sender
type Notifier struct {
	sender Sender
	logger zerolog.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(sender Sender, logger zerolog.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: logger,
	}
}

// StatusMessage builds the subject and body for a status-change email.
// Returns ok=false for statuses outside {pending, approved, rejected}.
func StatusMessage(status, comments string) (subject, body string, ok bool) {
	switch status {
	case "pending":
		subject = "Bursary Application Received"
		body = "Dear Applicant,\n\n" +
			"We have received your bursary application and it is currently under review.\n" +
			"Our team will assess your application and get back to you soon.\n\n" +
			"Application Status: Pending\n"
	case "approved":
		subject = "Bursary Application Approved"
		body = "Dear Applicant,\n\n" +
			"We are pleased to inform you that your bursary application has been APPROVED.\n\n" +
			"Application Status: Approved\n"
		if comments != "" {
			body += fmt.Sprintf("Reviewer Comments: %s\n", comments)
		}
		body += "\nNext steps will be communicated separately.\n\n" +
			"Congratulations!\nBursary Committee\n"
	case "rejected":
		subject = "Bursary Application Status"
		body = "Dear Applicant,\n\n" +
			"After careful review, we regret to inform you that your bursary application has been REJECTED.\n\n" +
			"Application Status: Rejected\n"
		if comments != "" {
			body += fmt.Sprintf("Reviewer Comments: %s\n", comments)
		}
		body += "\nWe appreciate your application and encourage you to apply again in the future.\n\n" +
			"Bursary Committee\n"
	default:
		return "", "", false
	}

	return subject, body, true
}

// NotifyStatusChange sends the status template to the recipient. Delivery
// failure is logged and reported as false, never propagated.
func (n *Notifier) NotifyStatusChange(toEmail, status, comments string) bool {
	subject, body, ok := StatusMessage(status, comments)
	if !ok {
		n.logger.Warn().Str("status", status).Msg("No notification template for status")
		return false
	}

	if err := n.sender.Send(toEmail, subject, body); err != nil {
		n.logger.Error().Err(err).Str("toEmail", toEmail).Str("status", status).Msg("Email sending failed")
		return false
	}

	return true
}
