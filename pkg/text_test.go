package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sales-orders", Slugify("Sales & Orders"))
	assert.Equal(t, "crm", Slugify("  <b>CRM</b> "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "chart-bar", SanitizeKey("Chart-Bar"))
	assert.Equal(t, "new_item", SanitizeKey("new_item!"))
}

func TestSanitizeTextField(t *testing.T) {
	assert.Equal(t, "New Customer", SanitizeTextField("  New\n <i>Customer</i>\t"))
}

func TestSanitizeHexColor(t *testing.T) {
	assert.Equal(t, "#fff", SanitizeHexColor("#fff"))
	assert.Equal(t, "#A1B2C3", SanitizeHexColor("#A1B2C3"))
	assert.Equal(t, "", SanitizeHexColor("#abcd"))
	assert.Equal(t, "", SanitizeHexColor("red"))
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://mail.google.com", SanitizeURL(" https://mail.google.com "))
	assert.Equal(t, "/crm/new-customer/", SanitizeURL("/crm/new-customer/"))
	assert.Equal(t, "#", SanitizeURL("#"))
	assert.Equal(t, "", SanitizeURL("javascript:alert(1)"))
}

func TestTrimWords(t *testing.T) {
	assert.Equal(t, "a b c", TrimWords("a  b\nc", 10, "..."))
	assert.Equal(t,
		"one two three four five six seven eight nine ten...",
		TrimWords("one two three four five six seven eight nine ten eleven", 10, "..."))
	assert.Equal(t, "bold text", TrimWords("<b>bold</b> text", 10, "..."))
}

func TestPassword(t *testing.T) {
	_, err := HashPassword("short")
	require.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, PasswordMatches(hash, "correct horse"))
	assert.False(t, PasswordMatches(hash, "battery staple"))
}
