package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextlayer-studio/storefront-backend/pkg/redis"
)

type fakeSlotClient struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeSlotClient() *fakeSlotClient {
	return &fakeSlotClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSlotClient) CartKey(session string) string {
	return "nl:cart:" + session
}

func (f *fakeSlotClient) Get(_ context.Context, key string) (string, error) {
	raw, ok := f.data[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return raw, nil
}

func (f *fakeSlotClient) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = fmt.Sprintf("%s", value)
	f.ttls[key] = ttl
	return nil
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeSlotClient()
	store := &RedisStore{client: client}

	offer := 38000
	lines := []Line{
		{ProductID: "5", Name: "Lámpara Luna Litofanía", Price: 45000, OfferPrice: &offer, Category: "Decoración", Quantity: 2},
		{ProductID: "3", Name: "Maceta Geométrica", Price: 12000, Category: "Decoración", Quantity: 1},
		{ProductID: "4", Name: "Soporte Auriculares RGB", Price: 15000, Category: "Accesorios", Quantity: 3},
	}
	require.NoError(t, store.Save(ctx, "sess-1", lines))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, lines, loaded)
	require.Equal(t, slotTTL, client.ttls[client.CartKey("sess-1")])
}

func TestRedisStoreMissingSlotIsEmptyCart(t *testing.T) {
	store := &RedisStore{client: newFakeSlotClient()}

	lines, err := store.Load(context.Background(), "never-saved")
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestRedisStoreCorruptSlotErrors(t *testing.T) {
	client := newFakeSlotClient()
	client.data[client.CartKey("sess-1")] = `{"not": "a line array"`
	store := &RedisStore{client: client}

	_, err := store.Load(context.Background(), "sess-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding cart slot")
}

func TestServiceStartsEmptyOnCorruptSlot(t *testing.T) {
	client := newFakeSlotClient()
	client.data[client.CartKey("sess-1")] = `not json at all`
	svc := newCartService(t, &RedisStore{client: client})

	dto, err := svc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Zero(t, dto.Count)
	require.Empty(t, dto.Lines)
}
