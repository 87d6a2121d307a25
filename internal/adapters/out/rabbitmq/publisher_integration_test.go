package rabbitmq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"testing"
	"time"

	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PublisherIntegrationTestSuite publishes against a RabbitMQ container.
type PublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
	publisher *rabbitmq.Publisher
	conn      *amqp.Connection
	ch        *amqp.Channel
	queue     string
}

func (suite *PublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor: wait.ForLog("Server startup complete").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	suite.Require().NoError(err)
	suite.url = fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func (suite *PublisherIntegrationTestSuite) SetupTest() {
	publisher, err := rabbitmq.Dial(suite.url, "")
	suite.Require().NoError(err)
	suite.publisher = publisher

	suite.conn, err = amqp.Dial(suite.url)
	suite.Require().NoError(err)
	suite.ch, err = suite.conn.Channel()
	suite.Require().NoError(err)

	q, err := suite.ch.QueueDeclare("", false, true, true, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ch.QueueBind(q.Name, "order.*", rabbitmq.DefaultExchange, false, nil))
	suite.queue = q.Name
}

func (suite *PublisherIntegrationTestSuite) TearDownTest() {
	suite.Require().NoError(suite.publisher.Close())
	_ = suite.ch.Close()
	_ = suite.conn.Close()
}

func (suite *PublisherIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func event(topic, id string) ports.ChangeEvent {
	return ports.ChangeEvent{Topic: topic, OrderID: id, OccurredAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

// receive consumes events with one of topics until n of them have arrived.
func (suite *PublisherIntegrationTestSuite) receive(n int, topics ...string) []rabbitmq.EventMessage {
	deliveries, err := suite.ch.Consume(suite.queue, "", true, true, false, false, nil)
	suite.Require().NoError(err)

	var got []rabbitmq.EventMessage
	timeout := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case d := <-deliveries:
			var msg rabbitmq.EventMessage
			suite.Require().NoError(json.Unmarshal(d.Body, &msg))
			if slices.Contains(topics, msg.Topic) {
				got = append(got, msg)
			}
		case <-timeout:
			suite.FailNow("timed out waiting for events", "received %d of %d", len(got), n)
		}
	}
	return got
}

func (suite *PublisherIntegrationTestSuite) TestPublish_RoutesByTopic() {
	ctx := context.Background()

	suite.Require().NoError(suite.publisher.Publish(ctx, event(ports.OrderUpsertedTopic, "A")))
	suite.Require().NoError(suite.publisher.Publish(ctx, event(ports.OrderCompletedTopic, "A")))
	suite.Require().NoError(suite.publisher.Ping())

	got := suite.receive(2, ports.OrderUpsertedTopic, ports.OrderCompletedTopic)
	suite.Equal("order.upserted", got[0].Topic)
	suite.Equal("order.completed", got[1].Topic)
	suite.Equal("A", got[1].OrderID)
}

func (suite *PublisherIntegrationTestSuite) TestPublish_CancelledWaitDoesNotConfirmNextPublish() {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := suite.publisher.Publish(cancelled, event(ports.OrderUpsertedTopic, "A")); err != nil {
		suite.Require().ErrorIs(err, context.Canceled)
	}

	ctx := context.Background()
	for _, id := range []string{"B", "C", "D"} {
		suite.Require().NoError(suite.publisher.Publish(ctx, event(ports.OrderDeletedTopic, id)))
	}

	var deleted []string
	for _, msg := range suite.receive(3, ports.OrderDeletedTopic) {
		deleted = append(deleted, msg.OrderID)
	}
	suite.Equal([]string{"B", "C", "D"}, deleted)
}

func (suite *PublisherIntegrationTestSuite) TestPing_ClosedConnection() {
	suite.Require().NoError(suite.publisher.Close())
	suite.Error(suite.publisher.Ping())

	publisher, err := rabbitmq.Dial(suite.url, "")
	suite.Require().NoError(err)
	suite.publisher = publisher
}

func TestPublisherIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PublisherIntegrationTestSuite))
}
