package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	backuperrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/segmentio/kafka-go"
)

type GuildLeaveMessage struct {
	GuildID string `json:"guildId"`
	Reason  string `json:"reason,omitempty"`
}

type LeaveHandler interface {
	HandleGuildLeave(ctx context.Context, guildID string)
}

type Consumer struct {
	reader       *kafka.Reader
	dlqWriter    *kafka.Writer
	leaveHandler LeaveHandler
	logger       *slog.Logger
	leaveTopic   string
	dlqTopic     string
}

func NewConsumer(
	brokers []string,
	groupID string,
	leaveTopic string,
	dlqTopic string,
	leaveHandler LeaveHandler,
	logger *slog.Logger,
) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          leaveTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: 1 * time.Second,
		Logger:         kafka.LoggerFunc(logger.Debug),
		ErrorLogger:    kafka.LoggerFunc(logger.Error),
	})

	dlqWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        dlqTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return &Consumer{
		reader:       reader,
		dlqWriter:    dlqWriter,
		leaveHandler: leaveHandler,
		logger:       logger,
		leaveTopic:   leaveTopic,
		dlqTopic:     dlqTopic,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Запуск потребления событий выхода из Kafka",
		"topic", c.leaveTopic,
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Остановка потребления событий из Kafka")
				return
			default:
				msg, err := c.reader.ReadMessage(ctx)
				if err != nil {
					c.logger.Error("Ошибка при чтении сообщения из Kafka",
						"error", err,
					)

					continue
				}

				c.logger.Info("Получено событие из Kafka",
					"topic", msg.Topic,
					"partition", msg.Partition,
					"offset", msg.Offset,
				)

				if err := c.processMessage(ctx, &msg); err != nil {
					c.logger.Error("Ошибка при обработке события",
						"error", err,
					)
				}
			}
		}
	}()
}

func (c *Consumer) processMessage(ctx context.Context, msg *kafka.Message) error {
	var leaveMessage GuildLeaveMessage

	if err := json.Unmarshal(msg.Value, &leaveMessage); err != nil {
		c.logger.Error("Ошибка при десериализации события",
			"error", err,
		)

		if sendErr := c.sendToDLQ(ctx, msg.Value, fmt.Sprintf("Ошибка десериализации: %s", err)); sendErr != nil {
			c.logger.Error("Ошибка при отправке события в DLQ",
				"error", sendErr,
			)
		}

		return fmt.Errorf("ошибка при десериализации события: %w", err)
	}

	if leaveMessage.GuildID == "" {
		newErr := &backuperrors.ErrMissingGuildIDInEvent{}
		c.logger.Error(newErr.Error())

		if sendErr := c.sendToDLQ(ctx, msg.Value, newErr.Error()); sendErr != nil {
			c.logger.Error("Ошибка при отправке события в DLQ",
				"error", sendErr,
			)
		}

		return newErr
	}

	c.leaveHandler.HandleGuildLeave(ctx, leaveMessage.GuildID)

	c.logger.Info("Событие выхода успешно обработано",
		"guildID", leaveMessage.GuildID,
	)

	return nil
}

func (c *Consumer) sendToDLQ(ctx context.Context, message []byte, errMsg string) error {
	c.logger.Info("Отправка события в DLQ",
		"error", errMsg,
		"topic", c.dlqTopic,
	)

	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte("error"),
		Value: message,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(errMsg)},
			{Key: "timestamp", Value: []byte(time.Now().Format(time.RFC3339))},
		},
		Time: time.Now(),
	})

	if err != nil {
		c.logger.Error("Ошибка при отправке события в DLQ",
			"error", err,
		)

		return fmt.Errorf("ошибка при отправке события в DLQ: %w", err)
	}

	c.logger.Info("Событие успешно отправлено в DLQ")

	return nil
}

func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}

	return c.dlqWriter.Close()
}
