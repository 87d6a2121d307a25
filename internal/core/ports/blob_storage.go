package ports

import "context"

// Key names one independently persisted structure.
type Key string

const (
	OrdersKey          Key = "orders"
	CompletedOrdersKey Key = "completed_orders"
	MenuKey            Key = "menu"
	ShopProfileKey     Key = "shop_profile"
)

// Keys lists every persisted structure.
func Keys() []Key {
	return []Key{OrdersKey, CompletedOrdersKey, MenuKey, ShopProfileKey}
}

// BlobStorage is a key-value store of JSON documents.
type BlobStorage interface {
	// Load returns the blob stored under key. found is false when the key was
	// never saved; err is reserved for storage failures.
	Load(ctx context.Context, key Key) (blob []byte, found bool, err error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key Key, blob []byte) error
}
