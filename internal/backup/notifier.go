package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/central-university-dev/guild-backup/internal/config"
	domainerrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Notifier доставляет собранные приглашения в настроенный канал назначения.
type Notifier struct {
	client   DiscordClient
	template string
	destID   string
	logger   *slog.Logger
}

func NewNotifier(client DiscordClient, cfg *config.Config, logger *slog.Logger) *Notifier {
	template := cfg.MessageTemplate
	if template == "" {
		template = config.DefaultMessageTemplate
	}

	return &Notifier{
		client:   client,
		template: template,
		destID:   cfg.DestinationChannelID,
		logger:   logger,
	}
}

// Notify отправляет одно сообщение со списком приглашений. Пустой набор
// никогда не отправляется. Отсутствие канала назначения — ошибка
// конфигурации: логируется, повтор не выполняется.
func (n *Notifier) Notify(ctx context.Context, guild *models.Guild, set *models.InviteSet) error {
	if set == nil || set.Len() == 0 {
		return nil
	}

	if n.destID == "" {
		n.logger.Error("Канал доставки резервных копий не настроен",
			"guildID", guild.ID,
		)

		return &domainerrors.ErrDestinationNotSet{}
	}

	inviteList := FormatInviteList(set.Codes())
	now := time.Now().Format(timestampLayout)

	content := RenderTemplate(n.template, now, guild.Name, guild.ID, inviteList)

	if err := n.client.SendMessage(ctx, n.destID, content); err != nil {
		n.logger.Error("Ошибка при отправке резервной копии приглашений",
			"guildID", guild.ID,
			"destination", n.destID,
			"error", err,
		)

		return fmt.Errorf("ошибка при отправке резервной копии: %w", err)
	}

	n.logger.Info("Резервная копия приглашений доставлена",
		"guildID", guild.ID,
		"invites", set.Len(),
	)

	return nil
}
