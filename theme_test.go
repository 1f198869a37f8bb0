package smartchat_test

import (
	"testing"

	"github.com/kodewerk/smartchat"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := smartchat.DefaultTheme()

	assert.Equal(t, 4, theme.UserMsg)
	assert.Equal(t, 1, theme.Error)
	assert.Equal(t, 2, theme.Success)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 5, theme.Accent)
	assert.Equal(t, 8, theme.Comment)
	assert.Equal(t, 2, theme.String)
	assert.Equal(t, 3, theme.Number)
	assert.Equal(t, 5, theme.Keyword)
}
