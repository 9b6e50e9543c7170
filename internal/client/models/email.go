package models

// EmailContent holds the raw content of the most recently fetched email
// together with its generated summary, as far as the pipeline has advanced.
type EmailContent struct {
	// Raw is the fetched email body.
	Raw string

	// Summary is the AI-generated summary of Raw. Empty until summarization
	// has run.
	Summary string
}
