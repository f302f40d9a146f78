package backup_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/central-university-dev/guild-backup/internal/backup"
	"github.com/central-university-dev/guild-backup/internal/backup/mocks"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestCollector(client *mocks.DiscordClient) *backup.Collector {
	return backup.NewCollector(client, backup.NewInviteExtractor(), 100, pkg.NewLogger(io.Discard))
}

func TestCollector_Collect_AllStrategies(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1", Name: "Test", VanityURLCode: "vanityXYZ"}
	channels := []*models.Channel{
		{ID: "c1", Name: "general", Type: models.ChannelTypeText},
	}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return(channels, nil)
	mockClient.On("CreateChannelInvite", mock.Anything, "c1").Return("minted1", nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "").Return([]*models.Message{
		{ID: "900", Content: "свежее https://discord.gg/abc123"},
	}, nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "0").Return([]*models.Message{
		{ID: "1", Content: "старое https://discord.com/invite/old42"},
	}, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"minted1", "vanityXYZ", "abc123", "old42"}, set.Codes())
}

func TestCollector_Collect_VanityOnly(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1", VanityURLCode: "onlyVanity"}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return([]*models.Channel{}, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"onlyVanity"}, set.Codes())
	mockClient.AssertNotCalled(t, "CreateChannelInvite", mock.Anything, mock.Anything)
}

func TestCollector_Collect_MintFailureDoesNotStopScan(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1", VanityURLCode: "vanityXYZ"}
	channels := []*models.Channel{
		{ID: "c1", Name: "general", Type: models.ChannelTypeText},
	}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return(channels, nil)
	mockClient.On("CreateChannelInvite", mock.Anything, "c1").
		Return("", errors.New("нет прав на создание приглашений"))
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "").Return([]*models.Message{
		{ID: "900", Content: "discord.gg/code1"},
	}, nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "0").Return([]*models.Message{}, nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "900", "").Return([]*models.Message{}, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"vanityXYZ", "code1"}, set.Codes())
}

func TestCollector_Collect_OldestFallbackUsesBeforeCursor(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1"}
	channels := []*models.Channel{
		{ID: "c1", Name: "general", Type: models.ChannelTypeText},
	}

	recent := []*models.Message{
		{ID: "900", Content: "без ссылок"},
		{ID: "850", Content: "тоже пусто"},
	}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return(channels, nil)
	mockClient.On("CreateChannelInvite", mock.Anything, "c1").Return("minted1", nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "").Return(recent, nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "0").
		Return(nil, errors.New("курсор after не поддерживается"))
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "850", "").Return([]*models.Message{
		{ID: "10", Content: "архив discord.gg/ancient"},
	}, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"minted1", "ancient"}, set.Codes())
	mockClient.AssertExpectations(t)
}

func TestCollector_Collect_DeduplicatesAcrossStrategies(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1", VanityURLCode: "shared"}
	channels := []*models.Channel{
		{ID: "c1", Name: "general", Type: models.ChannelTypeText},
	}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return(channels, nil)
	mockClient.On("CreateChannelInvite", mock.Anything, "c1").Return("shared", nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "").Return([]*models.Message{
		{ID: "900", Content: "https://discord.gg/shared"},
	}, nil)
	mockClient.On("GetMessages", mock.Anything, "c1", 100, "", "0").Return([]*models.Message{
		{ID: "1", Content: "https://discord.com/invite/shared"},
	}, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"shared"}, set.Codes())
}

func TestCollector_Collect_SkipsNonTextChannels(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	guild := &models.Guild{ID: "g1", VanityURLCode: "vanityXYZ"}
	channels := []*models.Channel{
		{ID: "v1", Name: "voice", Type: models.ChannelTypeVoice},
		{ID: "cat", Name: "category", Type: models.ChannelTypeCategory},
	}

	mockClient.On("GetGuildChannels", mock.Anything, "g1").Return(channels, nil)

	set := collector.Collect(context.Background(), guild)

	assert.Equal(t, []string{"vanityXYZ"}, set.Codes())
	mockClient.AssertNotCalled(t, "GetMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCollector_Collect_NilGuild(t *testing.T) {
	mockClient := new(mocks.DiscordClient)
	collector := newTestCollector(mockClient)

	set := collector.Collect(context.Background(), nil)

	assert.Zero(t, set.Len())
}
