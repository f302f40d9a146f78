package discord

import (
	"encoding/json"

	"github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
)

// channelWrapper покрывает оба вида элементов списка: обёртку {"channel": {...}}
// и канал без обёртки.
type channelWrapper struct {
	Channel *models.Channel    `json:"channel"`
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Type    models.ChannelType `json:"type"`
}

func (w *channelWrapper) unwrap() *models.Channel {
	if w.Channel != nil && w.Channel.ID != "" {
		return w.Channel
	}

	if w.ID != "" {
		return &models.Channel{ID: w.ID, Name: w.Name, Type: w.Type}
	}

	return nil
}

// NormalizeChannelListing приводит ответ со списком каналов к плоскому списку
// записей каналов. Поддерживаются три формы ответа: плоский массив, объект с
// выделенной корзиной "TEXT" и объект-словарь, значения которого могут быть
// массивами записей (служебные ключи с не-массивами пропускаются).
func NormalizeChannelListing(data []byte) ([]*models.Channel, error) {
	if len(data) == 0 {
		return nil, &errors.ErrInvalidChannelListing{Reason: "пустое тело ответа"}
	}

	var rawList []json.RawMessage
	if err := json.Unmarshal(data, &rawList); err == nil {
		return decodeChannelEntries(rawList), nil
	}

	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return nil, &errors.ErrInvalidChannelListing{Reason: err.Error()}
	}

	var channels []*models.Channel

	for _, value := range rawMap {
		var entries []json.RawMessage
		if err := json.Unmarshal(value, &entries); err != nil {
			// Служебный ключ (count, id и т.п.), не массив записей.
			continue
		}

		channels = append(channels, decodeChannelEntries(entries)...)
	}

	return channels, nil
}

func decodeChannelEntries(entries []json.RawMessage) []*models.Channel {
	channels := make([]*models.Channel, 0, len(entries))

	for _, entry := range entries {
		var wrapper channelWrapper
		if err := json.Unmarshal(entry, &wrapper); err != nil {
			continue
		}

		if channel := wrapper.unwrap(); channel != nil {
			channels = append(channels, channel)
		}
	}

	return channels
}

// FilterTextCapable отбирает каналы, участвующие в поиске приглашений.
func FilterTextCapable(channels []*models.Channel) []*models.Channel {
	var text []*models.Channel

	for _, channel := range channels {
		if channel.IsTextCapable() {
			text = append(text, channel)
		}
	}

	return text
}
