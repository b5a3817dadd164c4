package media

import "regexp"

// Canonical video URLs look like
// https://www.douyin.com/video/7347298765432109876 (or note/ for image
// posts), with an 18 or 19 digit aweme ID after the segment.
var awemeIDPattern = regexp.MustCompile(`(?:video|note)/([0-9]{18,19})`)

// ExtractAwemeID pulls the numeric aweme ID out of a canonical URL.
func ExtractAwemeID(u string) (string, bool) {
	m := awemeIDPattern.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}

	return m[1], true
}
