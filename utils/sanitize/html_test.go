package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
		{
			name:  "plain text",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "keeps structure",
			input: "<p>hello <strong>world</strong></p>",
			want:  "<p>hello <strong>world</strong></p>",
		},
		{
			name:  "strips script with contents",
			input: `<p>ok</p><script>alert("x")</script>`,
			want:  "<p>ok</p>",
		},
		{
			name:  "strips nested iframe",
			input: `<div><iframe src="https://evil.test"></iframe>text</div>`,
			want:  "<div>text</div>",
		},
		{
			name:  "drops event handlers",
			input: `<p onclick="alert(1)" class="intro">hi</p>`,
			want:  `<p class="intro">hi</p>`,
		},
		{
			name:  "drops javascript hrefs",
			input: `<a href="javascript:alert(1)">link</a>`,
			want:  "<a>link</a>",
		},
		{
			name:  "keeps normal hrefs",
			input: `<a href="https://example.com">link</a>`,
			want:  `<a href="https://example.com">link</a>`,
		},
		{
			name:  "drops data urls",
			input: `<a href="data:text/html,<script>x</script>">link</a>`,
			want:  "<a>link</a>",
		},
		{
			name:  "arabic content untouched",
			input: "<p>مرحباً بكم</p>",
			want:  "<p>مرحباً بكم</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTML(tt.input))
		})
	}
}
