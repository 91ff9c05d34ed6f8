package models

// EmailNotification is a queued email waiting for a notification worker.
type EmailNotification struct {
	To      string
	Subject string
	Message string
	HTML    string
}
