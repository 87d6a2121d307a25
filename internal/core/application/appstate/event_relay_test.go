package appstate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"restaurant/internal/core/application/appstate"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	topics := make([]string, 0, len(p.events))
	for _, e := range p.events {
		topics = append(topics, e.Topic+":"+e.OrderID)
	}
	return topics
}

func TestEventRelay(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	s := appstate.Load(ctx, emptyRepository(), appstate.Options{Location: time.UTC}, discardLogger())
	publisher := &recordingPublisher{}
	relay := appstate.NewEventRelay(publisher, kernel.FixedClock(time.Unix(0, 0)), 0, discardLogger())
	relay.Watch(s.Orders, s.Completed)
	go relay.Run(ctx)

	_, err := s.Orders.Upsert(ctx, newOrder(t, "A", order.Pending))
	require.NoError(t, err)
	_, err = s.Orders.Patch(ctx, "A", order.StatusPatch(order.Delivered))
	require.NoError(t, err)
	require.NoError(t, s.Orders.Delete(ctx, "A"))

	expected := []string{
		"order.upserted:A",
		"order.completed:A",
		"order.upserted:A",
		"order.deleted:A",
	}
	assert.Eventually(t, func() bool { return len(publisher.topics()) == len(expected) }, time.Second, 5*time.Millisecond)
	assert.Equal(t, expected, publisher.topics())
}
