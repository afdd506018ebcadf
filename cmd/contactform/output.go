package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andyrewlee/contactform/internal/config"
	"github.com/andyrewlee/contactform/internal/contact"
)

// writeSubmission prints the last accepted submission in the configured
// format. The message line is left out when no message was submitted.
func writeSubmission(w io.Writer, format string, v contact.Values) error {
	switch strings.ToLower(format) {
	case "", config.OutputNone:
		return nil

	case config.OutputText:
		lines := []string{
			"First Name: " + v.FirstName,
			"Last Name: " + v.LastName,
			"Email: " + v.Email,
		}
		if v.HasMessage() {
			lines = append(lines, "Message: "+v.Message)
		}
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err

	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	return fmt.Errorf("%w: %q", config.ErrInvalidOutput, format)
}
