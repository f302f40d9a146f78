package backup

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/guild-backup/internal/common/metrics"
	"github.com/central-university-dev/guild-backup/internal/discord"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"go.uber.org/multierr"
)

// DiscordClient описывает операции платформенного API, необходимые рабочему
// процессу резервного копирования.
type DiscordClient interface {
	GetGuild(ctx context.Context, guildID string) (*models.Guild, error)

	GetGuildChannels(ctx context.Context, guildID string) ([]*models.Channel, error)

	CreateChannelInvite(ctx context.Context, channelID string) (string, error)

	GetMessages(ctx context.Context, channelID string, limit int, before, after string) ([]*models.Message, error)

	SendMessage(ctx context.Context, channelID, content string) error
}

// earliestMessageID — минимально возможный идентификатор сообщения,
// используется курсором "after" для запроса самых старых сообщений канала.
const earliestMessageID = "0"

// Collector собирает коды приглашений сообщества тремя независимыми
// стратегиями: создание нового приглашения, vanity-код и сканирование
// истории сообщений. Отказ любой стратегии не прерывает остальные.
type Collector struct {
	client    DiscordClient
	extractor *InviteExtractor
	scanLimit int
	logger    *slog.Logger
}

func NewCollector(client DiscordClient, extractor *InviteExtractor, scanLimit int, logger *slog.Logger) *Collector {
	if scanLimit <= 0 {
		scanLimit = 100
	}

	return &Collector{
		client:    client,
		extractor: extractor,
		scanLimit: scanLimit,
		logger:    logger,
	}
}

// Collect возвращает дедуплицированный набор кодов приглашений сообщества.
// Набор живёт один запуск: каждый вызов начинает с пустого набора.
func (c *Collector) Collect(ctx context.Context, guild *models.Guild) *models.InviteSet {
	set := models.NewInviteSet()

	if guild == nil {
		return set
	}

	var errs error

	channels, err := c.client.GetGuildChannels(ctx, guild.ID)
	if err != nil {
		c.logger.Warn("Не удалось получить список каналов сообщества",
			"guildID", guild.ID,
			"error", err,
		)

		errs = multierr.Append(errs, err)
	}

	textChannels := discord.FilterTextCapable(channels)

	if len(textChannels) > 0 {
		if err := c.mintInvite(ctx, textChannels[0], set); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if guild.VanityURLCode != "" {
		if set.Add(guild.VanityURLCode) {
			metrics.RecordInvites(metrics.StrategyVanity, 1)
		}
	}

	for _, channel := range textChannels {
		if err := c.scanChannel(ctx, channel, set); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		c.logger.Warn("Часть стратегий сбора приглашений завершилась с ошибками",
			"guildID", guild.ID,
			"collected", set.Len(),
			"error", errs,
		)
	}

	return set
}

func (c *Collector) mintInvite(ctx context.Context, channel *models.Channel, set *models.InviteSet) error {
	code, err := c.client.CreateChannelInvite(ctx, channel.ID)
	if err != nil {
		c.logger.Warn("Не удалось создать новое приглашение",
			"channelID", channel.ID,
			"error", err,
		)

		return err
	}

	if set.Add(code) {
		metrics.RecordInvites(metrics.StrategyInviteCreate, 1)
	}

	c.logger.Info("Создано новое приглашение",
		"channelID", channel.ID,
	)

	return nil
}

// scanChannel просматривает страницу самых новых и страницу самых старых
// сообщений канала. Если запрос "after" самых старых сообщений отклонён или
// пуст, используется обходной путь: запрос "before" самого старого
// идентификатора свежей страницы.
func (c *Collector) scanChannel(ctx context.Context, channel *models.Channel, set *models.InviteSet) error {
	var errs error

	recent, err := c.client.GetMessages(ctx, channel.ID, c.scanLimit, "", "")
	if err != nil {
		c.logger.Warn("Не удалось получить свежие сообщения канала",
			"channelID", channel.ID,
			"error", err,
		)

		errs = multierr.Append(errs, err)
	}

	c.harvest(recent, set)

	oldest, err := c.client.GetMessages(ctx, channel.ID, c.scanLimit, "", earliestMessageID)
	if err != nil || len(oldest) == 0 {
		if err != nil {
			errs = multierr.Append(errs, err)
		}

		if len(recent) > 0 {
			// Сообщения приходят от новых к старым: последний элемент страницы
			// самый старый.
			before := recent[len(recent)-1].ID

			oldest, err = c.client.GetMessages(ctx, channel.ID, c.scanLimit, before, "")
			if err != nil {
				c.logger.Warn("Не удалось получить старые сообщения канала",
					"channelID", channel.ID,
					"error", err,
				)

				errs = multierr.Append(errs, err)
			}
		}
	}

	c.harvest(oldest, set)

	return errs
}

func (c *Collector) harvest(messages []*models.Message, set *models.InviteSet) {
	for _, message := range messages {
		for _, code := range c.extractor.Extract(message.Content) {
			if set.Add(code) {
				metrics.RecordInvites(metrics.StrategyMessageScan, 1)
			}
		}
	}
}
