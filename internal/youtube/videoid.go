package youtube

import "regexp"

// Matches a watch URL or a youtu.be short link at the start of the input,
// optionally preceded by a scheme and "www.". The dot in youtu.be is left
// unescaped so links accepted before keep working.
var videoIDPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu.be/)([a-zA-Z0-9_-]{11})`)

var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of a watch URL or a
// short link. Anything after the ID is ignored. ok is false for any other input.
func ExtractVideoID(link string) (id string, ok bool) {
	m := videoIDPattern.FindStringSubmatch(link)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ValidVideoID reports whether id is a bare 11-character video ID
func ValidVideoID(id string) bool {
	return bareIDPattern.MatchString(id)
}

// EmbedURL returns the player URL for a video
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
