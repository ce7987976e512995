package media

import "testing"

func TestIsImage(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/photos/IMG_0001.JPG", true},
		{"holiday.jpeg", true},
		{"scan.tif", true},
		{"sticker.webp", true},
		{"clip.mp4", false},
		{"notes.txt", false},
		{"noext", false},
		{"archive.jpg.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsImage(tt.path); got != tt.expected {
				t.Errorf("IsImage(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
