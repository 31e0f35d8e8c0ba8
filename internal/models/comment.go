package models

// Comment is a single top-level comment as returned by the video platform
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Texts returns the comment bodies in order
func Texts(comments []Comment) []string {
	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}
	return texts
}
