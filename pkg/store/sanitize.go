package store

import "regexp"

// unsafeChars are the characters replaced in titles before they become filenames.
var unsafeChars = regexp.MustCompile(`[\\/:*"<>|]`)

// SanitizeTitle replaces each of \ / : * " < > | with an underscore.
// The result never contains those characters, so applying it twice changes nothing.
func SanitizeTitle(title string) string {
	return unsafeChars.ReplaceAllString(title, "_")
}
