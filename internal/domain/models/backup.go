package models

import "time"

type TriggerKind string

const (
	TriggerManual TriggerKind = "manual"
	TriggerAuto   TriggerKind = "auto"
)

type BackupStatus string

const (
	BackupStatusSuccess        BackupStatus = "success"
	BackupStatusNothingFound   BackupStatus = "nothing_found"
	BackupStatusGuildNotFound  BackupStatus = "guild_not_found"
	BackupStatusAlreadyRunning BackupStatus = "already_running"
	BackupStatusFailed         BackupStatus = "failed"
)

// BackupRecord описывает одну завершённую попытку резервного копирования
// приглашений сообщества.
type BackupRecord struct {
	ID          int64       `json:"id"`
	GuildID     string      `json:"guildId"`
	GuildName   string      `json:"guildName"`
	Trigger     TriggerKind `json:"trigger"`
	InviteCodes []string    `json:"inviteCodes"`
	Delivered   bool        `json:"delivered"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type BackupResult struct {
	Status      BackupStatus `json:"status"`
	InviteCount int          `json:"inviteCount"`
}
