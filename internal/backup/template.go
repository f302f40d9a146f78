package backup

import (
	"strings"
)

// InviteBaseURL — канонический вид ссылки-приглашения.
const InviteBaseURL = "https://discord.gg/"

// TemplateReference — справочный текст о поддерживаемых подстановках шаблона.
// Информационное поле, на поведение не влияет.
const TemplateReference = "Подстановки шаблона: {now} — время запуска, {guildName} — название сообщества, " +
	"{guildId} — идентификатор сообщества, {inviteList} — список ссылок-приглашений"

// RenderTemplate выполняет буквальную подстановку распознанных токенов.
// Заменяются все вхождения каждого токена; нераспознанные токены остаются
// без изменений, рекурсивная подстановка не выполняется.
func RenderTemplate(template, now, guildName, guildID, inviteList string) string {
	replacer := strings.NewReplacer(
		"{now}", now,
		"{guildName}", guildName,
		"{guildId}", guildID,
		"{inviteList}", inviteList,
	)

	return replacer.Replace(template)
}

// FormatInviteList приводит коды к каноническим ссылкам и собирает их в
// маркированный список, разделённый переводами строк.
func FormatInviteList(codes []string) string {
	var sb strings.Builder

	for i, code := range codes {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString("- ")
		sb.WriteString(InviteBaseURL)
		sb.WriteString(code)
	}

	return sb.String()
}
