package distribution

// PostCopy is the model-authored content of one post: the prompt handed to
// the image synthesizer and the caption sent alongside the image.
type PostCopy struct {
	Prompt  string `json:"prompt"`
	Caption string `json:"caption"`
}
