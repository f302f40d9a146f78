package backup_test

import (
	"testing"

	"github.com/central-university-dev/guild-backup/internal/backup"
	"github.com/central-university-dev/guild-backup/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate_DefaultTemplate(t *testing.T) {
	inviteList := backup.FormatInviteList([]string{"abc123", "xyz789"})

	content := backup.RenderTemplate(
		config.DefaultMessageTemplate,
		"2026-08-31 12:00:00",
		"Test Guild",
		"123456",
		inviteList,
	)

	expected := "[2026-08-31 12:00:00] Left Guild \"Test Guild\" (123456):\n" +
		"- https://discord.gg/abc123\n" +
		"- https://discord.gg/xyz789"

	assert.Equal(t, expected, content)
}

func TestRenderTemplate_ReplacesAllOccurrences(t *testing.T) {
	content := backup.RenderTemplate("{guildName}:{guildId} {guildName}", "", "Test", "123", "")

	assert.Equal(t, "Test:123 Test", content)
}

func TestRenderTemplate_LeavesUnknownTokens(t *testing.T) {
	content := backup.RenderTemplate("{unknown} {guildId}", "", "", "42", "")

	assert.Equal(t, "{unknown} 42", content)
}

func TestRenderTemplate_NoRecursiveSubstitution(t *testing.T) {
	content := backup.RenderTemplate("{guildName}", "", "{guildId}", "123", "")

	assert.Equal(t, "{guildId}", content)
}

func TestFormatInviteList_SingleCode(t *testing.T) {
	assert.Equal(t, "- https://discord.gg/abc123", backup.FormatInviteList([]string{"abc123"}))
}

func TestFormatInviteList_Empty(t *testing.T) {
	assert.Empty(t, backup.FormatInviteList(nil))
}
