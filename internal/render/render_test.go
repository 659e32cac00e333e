package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idavidov/clipm/pkg/types"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "short string untouched", input: "hello", max: 10, want: "hello"},
		{name: "exact length untouched", input: "hello", max: 5, want: "hello"},
		{name: "long string cut with ellipsis", input: "hello world", max: 8, want: "hello w…"},
		{name: "newlines become spaces", input: "hello\nworld", max: 20, want: "hello world"},
		{name: "multibyte counts runes", input: "日本語テスト", max: 4, want: "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.max))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "500 B", FormatSize(500))
	assert.Equal(t, "1023 B", FormatSize(1023))
	assert.Equal(t, "1.0 KB", FormatSize(1024))
	assert.Equal(t, "2.0 KB", FormatSize(2048))
	assert.Equal(t, "1.0 MB", FormatSize(1024*1024))
	assert.Equal(t, "2.0 MB", FormatSize(2*1024*1024))
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp("2026-02-17T10:30:00Z")
	assert.Contains(t, got, "2026")
	assert.NotContains(t, got, "T")
	assert.NotContains(t, got, "Z")

	assert.Equal(t, "not-a-timestamp", FormatTimestamp("not-a-timestamp"))
}

func TestPreviewMasksPasswords(t *testing.T) {
	label := "token"
	text := &types.ClipEntry{Content: "hello world", ContentType: types.ContentTypeText}
	assert.Equal(t, "hello world", Preview(text))

	pass := &types.ClipEntry{Content: "my-secret-password", ContentType: types.ContentTypePassword, Label: &label}
	assert.Equal(t, PasswordPlaceholder, Preview(pass))
}

func TestTableNeverShowsPasswordContent(t *testing.T) {
	label := "token"
	entries := []types.ClipEntry{
		{ID: 1, Content: "plain text", ContentType: types.ContentTypeText, CreatedAt: "2026-02-17T10:30:00Z"},
		{ID: 2, Content: "super-secret", ContentType: types.ContentTypePassword, Label: &label, CreatedAt: "2026-02-17T10:31:00Z"},
	}

	var buf bytes.Buffer
	Table(&buf, entries)
	out := buf.String()

	assert.Contains(t, out, "plain text")
	assert.Contains(t, out, PasswordPlaceholder)
	assert.Contains(t, out, "token")
	assert.False(t, strings.Contains(out, "super-secret"), "password content must never render")
}
