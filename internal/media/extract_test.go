package media

import "testing"

func TestExtractAwemeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{"video segment", "https://www.douyin.com/video/1234567890123456789", "1234567890123456789", true},
		{"note segment", "https://www.douyin.com/note/123456789012345678", "123456789012345678", true},
		{"query string ignored", "https://www.douyin.com/video/1234567890123456789?region=CN&from=share", "1234567890123456789", true},
		{"fragment ignored", "https://www.douyin.com/note/123456789012345678#comments", "123456789012345678", true},
		{"share path", "https://www.iesdouyin.com/share/video/7347298765432109876/?mid=1", "7347298765432109876", true},
		{"too few digits", "https://www.douyin.com/video/12345678901234567", "", false},
		{"non-numeric id", "https://www.douyin.com/video/abcdefghijklmnopqr", "", false},
		{"no id segment", "https://www.douyin.com/discover", "", false},
		{"short link left unexpanded", "https://v.douyin.com/iJNvRkF9/", "", false},
		{"empty", "", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, ok := ExtractAwemeID(test.url)
			if ok != test.ok {
				t.Fatalf("ExtractAwemeID(%q) ok = %v, want %v", test.url, ok, test.ok)
			}
			if id != test.id {
				t.Fatalf("ExtractAwemeID(%q) = %q, want %q", test.url, id, test.id)
			}
		})
	}
}
