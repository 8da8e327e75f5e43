package domain

// CaptionPayload is the publish metadata derived from an interpretation and the
// winning blueprint. Keywords are deduplicated but keep insertion order, capped
// at six.
type CaptionPayload struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Keywords []string `json:"keywords"`
}
