package discord

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/central-university-dev/guild-backup/internal/common/httputil"
	"github.com/central-university-dev/guild-backup/internal/common/metrics"
	"github.com/central-university-dev/guild-backup/internal/config"
	domainerrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	baseURL := cfg.DiscordAPIBaseURL
	if baseURL == "" {
		baseURL = "https://discord.com/api/v10"
	}

	client := httputil.CreateResilientHTTPClient(cfg, logger, "discord")

	client.SetHeader("Authorization", "Bot "+cfg.DiscordBotToken)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		metrics.RecordDiscordRequest(resp.Request.Method, resp.StatusCode())
		return nil
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *Client) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	url := fmt.Sprintf("%s/guilds/%s", c.baseURL, guildID)

	var guild models.Guild

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&guild).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сообщества %s: %w", guildID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &domainerrors.ErrGuildNotFound{GuildID: guildID}
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("API вернул статус %d при запросе сообщества %s", resp.StatusCode(), guildID)
	}

	return &guild, nil
}

func (c *Client) GetGuildChannels(ctx context.Context, guildID string) ([]*models.Channel, error) {
	url := fmt.Sprintf("%s/guilds/%s/channels", c.baseURL, guildID)

	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе каналов сообщества %s: %w", guildID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &domainerrors.ErrGuildNotFound{GuildID: guildID}
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("API вернул статус %d при запросе каналов сообщества %s", resp.StatusCode(), guildID)
	}

	return NormalizeChannelListing(resp.Body())
}

// CreateChannelInvite создаёт бессрочное приглашение без ограничения числа
// использований на указанном канале и возвращает его код.
func (c *Client) CreateChannelInvite(ctx context.Context, channelID string) (string, error) {
	url := fmt.Sprintf("%s/channels/%s/invites", c.baseURL, channelID)

	var invite struct {
		Code string `json:"code"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"max_age":   0,
			"max_uses":  0,
			"temporary": false,
		}).
		SetResult(&invite).
		Post(url)

	if err != nil {
		return "", fmt.Errorf("ошибка при создании приглашения в канале %s: %w", channelID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return "", &domainerrors.ErrChannelNotFound{ChannelID: channelID}
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("API вернул статус %d при создании приглашения в канале %s", resp.StatusCode(), channelID)
	}

	if invite.Code == "" {
		return "", fmt.Errorf("API вернул пустой код приглашения для канала %s", channelID)
	}

	return invite.Code, nil
}

// GetMessages возвращает страницу сообщений канала. Курсоры before и after
// взаимоисключающие; пустая строка означает отсутствие курсора.
func (c *Client) GetMessages(ctx context.Context, channelID string, limit int, before, after string) ([]*models.Message, error) {
	url := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, channelID)

	request := c.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit))

	if before != "" {
		request.SetQueryParam("before", before)
	}

	if after != "" {
		request.SetQueryParam("after", after)
	}

	var messages []*models.Message

	resp, err := request.
		SetResult(&messages).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сообщений канала %s: %w", channelID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &domainerrors.ErrChannelNotFound{ChannelID: channelID}
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("API вернул статус %d при запросе сообщений канала %s", resp.StatusCode(), channelID)
	}

	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, channelID, content string) error {
	url := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, channelID)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"content": content,
		}).
		Post(url)

	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения в канал %s: %w", channelID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return &domainerrors.ErrChannelNotFound{ChannelID: channelID}
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("API вернул статус %d при отправке сообщения в канал %s", resp.StatusCode(), channelID)
	}

	return nil
}
