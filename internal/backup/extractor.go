package backup

import (
	"regexp"
)

// InviteExtractor находит коды приглашений в произвольном тексте.
// Принимаются две формы ссылок: короткая (discord.gg/<код>) и полная
// (discord.com/invite/<код> либо discordapp.com/invite/<код>), без учёта
// регистра. Код состоит из латинских букв и цифр.
type InviteExtractor struct {
	inviteRegex *regexp.Regexp
}

func NewInviteExtractor() *InviteExtractor {
	return &InviteExtractor{
		inviteRegex: regexp.MustCompile(`(?i)(?:discord\.gg/|discord(?:app)?\.com/invite/)([a-z0-9]+)`),
	}
}

// Extract возвращает найденные коды в порядке первого появления, без
// повторов в пределах одной входной строки. Для пустого или не содержащего
// ссылок текста возвращается пустой список.
func (e *InviteExtractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	matches := e.inviteRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	codes := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, match := range matches {
		if len(match) < 2 {
			continue
		}

		code := match[1]
		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes
}
