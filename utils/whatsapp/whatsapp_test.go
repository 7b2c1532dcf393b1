package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	link, err := Link("+971 50 123 4567", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/971501234567?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, DefaultGreeting, parsed.Query().Get("text"))
}

func TestLinkCustomGreeting(t *testing.T) {
	link, err := Link("20123456789", "hello there")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello there", parsed.Query().Get("text"))
}

func TestLinkNoNumber(t *testing.T) {
	_, err := Link("", "")
	assert.ErrorIs(t, err, ErrNoNumber)

	_, err = Link("+- ()", "")
	assert.ErrorIs(t, err, ErrNoNumber)
}
