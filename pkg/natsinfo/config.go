package natsinfo

import (
	"fmt"
	"time"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type NatsConfig struct {
	Host string `env:"NATS_HOST"`
	Port string `env:"NATS_PORT"`
}

func (c *NatsConfig) GetURL() string {
	if c.Host == "" || c.Port == "" {
		return nats.DefaultURL
	}
	return fmt.Sprintf("nats://%s:%s", c.Host, c.Port)
}

type NewNatsConnectionParams struct {
	fx.In

	Config *NatsConfig
	Log    *zap.Logger
}

type NewNatsConnectionResult struct {
	fx.Out

	Conn *nats.Conn
	JS   nats.JetStreamContext
}

func NewNatsConnection(params NewNatsConnectionParams) (NewNatsConnectionResult, error) {
	conn, err := nats.Connect(params.Config.GetURL(),
		nats.Timeout(time.Second*30),
		nats.RetryOnFailedConnect(true),
	)
	if err != nil {
		return NewNatsConnectionResult{}, err
	}

	js, err := conn.JetStream()
	if err != nil {
		return NewNatsConnectionResult{}, err
	}

	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	done := time.NewTimer(time.Second * 30)
	defer done.Stop()

	for nats.CONNECTED != conn.Status() {
		select {
		case <-done.C:
			return NewNatsConnectionResult{}, fmt.Errorf("unable establish nats connection, state: %s", conn.Status())
		case <-ticker.C:
			params.Log.Info("waiting for NATS connection", zap.String("state", conn.Status().String()))
		}
	}

	return NewNatsConnectionResult{
		Conn: conn,
		JS:   js,
	}, nil
}
