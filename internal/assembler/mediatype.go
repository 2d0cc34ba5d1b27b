package assembler

import "catchup-service/internal/domain/catchup"

// NormalizeMediaType resolves the raw media fields of a social post to
// exactly one of video/image/none. An explicit upstream tag always wins
// over inferred media presence, and video is preferred over image when
// both URLs are present but no tag disambiguates.
func NormalizeMediaType(raw, videoURL, imageURL string) catchup.MediaType {
	if raw == "video" {
		return catchup.MediaVideo
	}
	if raw == "image" {
		return catchup.MediaImage
	}
	if videoURL != "" {
		return catchup.MediaVideo
	}
	if imageURL != "" {
		return catchup.MediaImage
	}
	return catchup.MediaNone
}
