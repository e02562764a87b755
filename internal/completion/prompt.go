package completion

import (
	"fmt"
	"strings"
)

// Sampling temperatures for the two cover-letter flavours.
const (
	SimpleTemperature   = 0.8
	JobAwareTemperature = 0.7
)

// CoverLetterPrompt asks for a cover letter using the résumé as reference. Fields are embedded verbatim.
func CoverLetterPrompt(jobTitle, companyName, resume string) string {
	return fmt.Sprintf("Write a professional cover letter for a %s position at %s. Here is my resume for reference:\n\n%s",
		jobTitle, companyName, resume)
}

// JobCoverLetterPrompt is CoverLetterPrompt with an optional job description.
func JobCoverLetterPrompt(jobTitle, companyName, jobDescription, resumeText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a professional cover letter for a %s position at %s.\n", jobTitle, companyName)
	if jobDescription != "" {
		fmt.Fprintf(&b, "The job description is: %s\n", jobDescription)
	}
	fmt.Fprintf(&b, "Here is my resume for reference:\n\n%s", resumeText)
	return b.String()
}
