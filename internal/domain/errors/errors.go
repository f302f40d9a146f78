package errors

import (
	"fmt"
)

type ErrGuildNotFound struct {
	GuildID string
}

func (e *ErrGuildNotFound) Error() string {
	return "сообщество не найдено: " + e.GuildID
}

func (e *ErrGuildNotFound) Is(target error) bool {
	_, ok := target.(*ErrGuildNotFound)
	return ok
}

type ErrChannelNotFound struct {
	ChannelID string
}

func (e *ErrChannelNotFound) Error() string {
	return "канал не найден: " + e.ChannelID
}

func (e *ErrChannelNotFound) Is(target error) bool {
	_, ok := target.(*ErrChannelNotFound)
	return ok
}

type ErrDestinationNotSet struct{}

func (e *ErrDestinationNotSet) Error() string {
	return "не задан идентификатор канала доставки резервных копий"
}

func (e *ErrDestinationNotSet) Is(target error) bool {
	_, ok := target.(*ErrDestinationNotSet)
	return ok
}

type ErrBackupAlreadyRunning struct {
	GuildID string
}

func (e *ErrBackupAlreadyRunning) Error() string {
	return "резервное копирование уже выполняется для сообщества: " + e.GuildID
}

func (e *ErrBackupAlreadyRunning) Is(target error) bool {
	_, ok := target.(*ErrBackupAlreadyRunning)
	return ok
}

// ErrMissingGuildIDInEvent возникает, когда в событии выхода из сообщества
// отсутствует обязательное поле guildId.
type ErrMissingGuildIDInEvent struct{}

func (e *ErrMissingGuildIDInEvent) Error() string {
	return "отсутствует обязательное поле guildId в событии выхода из сообщества"
}

func (e *ErrMissingGuildIDInEvent) Is(target error) bool {
	_, ok := target.(*ErrMissingGuildIDInEvent)
	return ok
}

type ErrInvalidChannelListing struct {
	Reason string
}

func (e *ErrInvalidChannelListing) Error() string {
	return "не удалось разобрать список каналов: " + e.Reason
}

type ErrUnknownDBAccessType struct {
	AccessType string
}

func (e *ErrUnknownDBAccessType) Error() string {
	return fmt.Sprintf("неизвестный тип доступа к базе данных: %s", e.AccessType)
}

type ErrUnknownEventTransport struct {
	Transport string
}

func (e *ErrUnknownEventTransport) Error() string {
	return fmt.Sprintf("неизвестный транспорт событий: %s", e.Transport)
}

type ErrBeginTransaction struct {
	Cause error
}

func (e *ErrBeginTransaction) Error() string {
	return fmt.Sprintf("ошибка при начале транзакции: %v", e.Cause)
}

func (e *ErrBeginTransaction) Unwrap() error {
	return e.Cause
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type ErrCommitTransaction struct {
	Cause error
}

func (e *ErrCommitTransaction) Error() string {
	return fmt.Sprintf("ошибка при фиксации транзакции: %v", e.Cause)
}

func (e *ErrCommitTransaction) Unwrap() error {
	return e.Cause
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
