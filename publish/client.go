package publish

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/posetrace/config"
	"go.uber.org/zap"
)

// NewClient builds a paho client from cfg. Connect is left to the caller.
func NewClient(cfg config.Mqtt, logger *zap.Logger) mqtt.Client {
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("connected to broker", zap.String("url", cfg.URL))
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("lost broker connection", zap.Error(err))
		})
	return mqtt.NewClient(options)
}

// Connect connects client and waits for the result.
func Connect(client mqtt.Client) error {
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to broker: %w", token.Error())
	}
	return nil
}

// RouteLogs sends paho's error and critical output to logger.
func RouteLogs(logger *zap.Logger) {
	mqtt.ERROR = zap.NewStdLog(logger.Named("mqtt"))
	mqtt.CRITICAL = zap.NewStdLog(logger.Named("mqtt"))
}
