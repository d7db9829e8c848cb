package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"github.com/showai/connect4-engine/internal/domain"
)

func TestPublishMoveSendsEncodedEvent(t *testing.T) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, config)

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev MoveEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Event != "MOVE_COMPUTED" || ev.RequestID != "req-1" {
			return fmt.Errorf("unexpected event %+v", ev)
		}
		if ev.Column == nil || *ev.Column != 3 {
			return fmt.Errorf("expected column 3, got %v", ev.Column)
		}
		return nil
	})

	p := NewProducerWith(sp, "connect4-moves")
	defer p.Close()

	col := 3
	err := p.PublishMove(context.Background(), domain.MoveRecord{RequestID: "req-1", Rows: 6, Cols: 7, Column: &col})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublishMoveReportsBrokerFailure(t *testing.T) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, config)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerWith(sp, "connect4-moves")
	defer p.Close()

	err := p.PublishMove(context.Background(), domain.MoveRecord{RequestID: "req-2"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
}

func TestPublishMoveHonoursCancelledContext(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	p := NewProducerWith(sp, "connect4-moves")
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.PublishMove(ctx, domain.MoveRecord{RequestID: "req-3"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
