package transcript

import "regexp"

const videoIDLength = 11

// videoIDRE matches every URL shape YouTube hands out for a single video:
// watch?v=, /v/, /e/, /embed/, /shorts/, and the youtu.be short domain.
// The id itself is exactly 11 identifier characters not followed by a
// twelfth; host and path keywords match case-insensitively.
var videoIDRE = regexp.MustCompile(`(?i)(?:youtube\.com/(?:watch\?(?:.*&)?v=|(?:v|e|embed|shorts)/)|youtu\.be/)([0-9A-Za-z_-]{11})(?:[^0-9A-Za-z_-]|$)`)

// ResolveVideoID extracts the canonical 11-character video id from a raw id
// or any supported URL form. An input of exactly 11 characters is taken
// verbatim. Pure, no IO.
func ResolveVideoID(input string) (string, error) {
	if len(input) == videoIDLength {
		return input, nil
	}
	if m := videoIDRE.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	return "", &InvalidVideoIDError{Input: input}
}
