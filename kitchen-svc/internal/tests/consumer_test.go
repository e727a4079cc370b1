package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cafe-pos/kitchen-svc/internal/domain"
	"cafe-pos/kitchen-svc/internal/mocks"
	"cafe-pos/kitchen-svc/internal/printer"
	"cafe-pos/kitchen-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleTicket() domain.OrderTicket {
	return domain.OrderTicket{
		ID: "3f2c9a1b-77aa-4c1e-9d0e-123456789abc",
		Lines: []domain.TicketLine{
			{
				Product:        domain.Product{ID: "1", Name: "French Vanilla Fantasy"},
				UnitPrice:      decimal.RequireFromString("6.99"),
				Quantity:       2,
				Customizations: &domain.Customizations{Size: "Large", Sugar: "Less Sugar"},
			},
			{
				Product:   domain.Product{ID: "20", Name: "Nasi Lemak"},
				UnitPrice: decimal.RequireFromString("9.90"),
				Quantity:  1,
			},
		},
		Quote:    domain.Quote{Total: decimal.RequireFromString("23.96928")},
		Currency: domain.Currency{Symbol: "RM", Code: "MYR"},
		PlacedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderTicket(t *testing.T) {
	want := "ORDER 3F2C9A1B  09:30\n" +
		"2 x French Vanilla Fantasy (Large, Less Sugar)\n" +
		"1 x Nasi Lemak\n" +
		"TOTAL RM23.97"

	assert.Equal(t, want, service.RenderTicket(sampleTicket()))
}

func TestRenderTicket_ShortIDNoTime(t *testing.T) {
	ticket := sampleTicket()
	ticket.ID = "abc"
	ticket.PlacedAt = time.Time{}

	got := service.RenderTicket(ticket)

	assert.Contains(t, got, "ORDER ABC\n")
}

func TestConsumer_ProcessTicket(t *testing.T) {
	tests := []struct {
		name         string
		inputMessage domain.KafkaMessage
		setupPrinter func(*mocks.TicketPrinter)
		wantErr      error
		anyErr       bool
	}{
		{
			name:         "success",
			inputMessage: domain.KafkaMessage{Type: domain.MessageOrderPlaced, Ticket: sampleTicket()},
			setupPrinter: func(m *mocks.TicketPrinter) {
				m.On("Print", sampleTicket().ID, mock.MatchedBy(func(text string) bool {
					return text == service.RenderTicket(sampleTicket())
				})).Return(nil).Once()
			},
		},
		{
			name:         "printer error",
			inputMessage: domain.KafkaMessage{Type: domain.MessageOrderPlaced, Ticket: sampleTicket()},
			setupPrinter: func(m *mocks.TicketPrinter) {
				m.On("Print", mock.Anything, mock.Anything).Return(errors.New("paper jam")).Once()
			},
			anyErr: true,
		},
		{
			name:         "empty ticket",
			inputMessage: domain.KafkaMessage{Type: domain.MessageOrderPlaced, Ticket: domain.OrderTicket{ID: "x"}},
			setupPrinter: func(m *mocks.TicketPrinter) {},
			wantErr:      service.ErrEmptyTicket,
		},
		{
			name:         "other message type",
			inputMessage: domain.KafkaMessage{Type: "order_cancelled", Ticket: sampleTicket()},
			setupPrinter: func(m *mocks.TicketPrinter) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockPrinter := mocks.NewTicketPrinter(t)
			testCase.setupPrinter(mockPrinter)
			consumer := service.NewConsumer(nil, mockPrinter, nil)

			err := consumer.ProcessTicket(testCase.inputMessage)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_StartSkipsBadMessagesAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.KafkaMessage{Type: domain.MessageOrderPlaced, Ticket: sampleTicket()})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker hiccup")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Run(func(mock.Arguments) {
		cancel()
	}).Once()

	mockPrinter := mocks.NewTicketPrinter(t)
	mockPrinter.On("Print", sampleTicket().ID, mock.Anything).Return(nil).Once()

	service.NewConsumer(reader, mockPrinter, nil).Start(ctx)
}

func TestLogPrinter_WritesOneEntryPerTicket(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := printer.NewLogPrinter(zap.New(core))

	require.NoError(t, p.Print("order-1", "ORDER ORDER-1\n1 x Nasi Lemak\nTOTAL RM9.96"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "order-1", entries[0].ContextMap()["order_id"])
	assert.Equal(t, []interface{}{"ORDER ORDER-1", "1 x Nasi Lemak", "TOTAL RM9.96"}, entries[0].ContextMap()["ticket"])
}
