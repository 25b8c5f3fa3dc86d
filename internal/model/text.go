package model

import "strings"

// Lines is a text split on '\n'. Terminated records whether the text ended with
// a newline, so Lines.String reproduces the original bytes exactly.
type Lines struct {
	Body       []string
	Terminated bool
}

// SplitLines breaks text into lines. The empty segment after a final newline is
// not part of Body; it is carried by Terminated instead.
func SplitLines(text string) Lines {
	parts := strings.Split(text, "\n")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		return Lines{Body: parts[:len(parts)-1], Terminated: true}
	}

	return Lines{Body: parts}
}

// String joins the lines back into text.
func (l Lines) String() string {
	text := strings.Join(l.Body, "\n")
	if l.Terminated {
		text += "\n"
	}

	return text
}

// Len returns the number of lines.
func (l Lines) Len() int {
	return len(l.Body)
}
