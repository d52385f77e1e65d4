package dto

// MailJob is the payload published to the mail topic. Bodies are fully
// rendered before publishing so the consumer only dials SMTP.
type MailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
