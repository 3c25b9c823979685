package design

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
	}{
		{"set dark mode", true},
		{"set light mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.isDarkMode, lipgloss.HasDarkBackground())
		})
	}
}

func TestGetStatusStyle(t *testing.T) {
	assert.Equal(t, TextSuccessStyle, GetStatusStyle("active"))
	assert.Equal(t, TextSecondaryStyle, GetStatusStyle("disabled"))
	assert.Equal(t, TextErrorStyle, GetStatusStyle("suspended"))
	assert.Equal(t, TextStyle, GetStatusStyle("pending"))
}

func TestCenterHorizontal(t *testing.T) {
	out := CenterHorizontal(20, "abcd")
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 8)))

	assert.Equal(t, "too wide", CenterHorizontal(3, "too wide"))
}
