package service

import (
	"context"

	"cafe-pos/pos-svc/internal/domain"
	"cafe-pos/pos-svc/internal/storage"
)

// SnapshotStore reads and writes the single saved cart entry.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type TicketPublisher interface {
	PublishTicket(ctx context.Context, ticket domain.OrderTicket) error
}

type QRGenerator interface {
	Generate(ticket domain.OrderTicket) ([]byte, error)
}

type StorefrontInterface interface {
	View() StorefrontView
	Categories() []domain.Category
	Customizations() CustomizationView

	SelectCategory(categoryID string) error
	SelectSubcategory(subcategoryID string) error
	NextProductPage() PageView
	PrevProductPage() PageView
	NextSubcategoryPage() PageView
	PrevSubcategoryPage() PageView

	Cart() CartView
	AddToCart(ctx context.Context, productID string, quantity int, customizations *domain.Customizations) (CartView, error)
	UpdateQuantity(ctx context.Context, index, quantity int) (CartView, error)
	RemoveItem(ctx context.Context, index int) (CartView, error)
	ClearCart(ctx context.Context) (CartView, error)
	ApplyDiscount(code string) (CartView, error)
	ClearDiscount() CartView

	AdvanceStep(ctx context.Context) (StepView, error)
	Receipt() (*Receipt, error)
}

var (
	_ StorefrontInterface = (*Storefront)(nil)
	_ SnapshotStore       = (*storage.RedisSnapshotStore)(nil)
	_ SnapshotStore       = (*storage.PostgresSnapshotStore)(nil)
	_ TicketPublisher     = (*storage.KafkaTicketPublisher)(nil)
	_ QRGenerator         = DefaultQRGenerator{}
)
