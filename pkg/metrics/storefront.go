package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for the shop's hot paths.
type StorefrontMetrics struct {
	cartMutations    *prometheus.CounterVec
	checkoutMessages prometheus.Counter
	chatRequests     *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation (add, update_quantity, remove).",
	}, []string{"op"})
	checkoutMessages := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_messages_total",
		Help: "Checkout messages handed off to WhatsApp.",
	})
	chatRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Assistant requests by outcome (ok, fallback, no_credential).",
	}, []string{"outcome"})
	reg.MustRegister(cartMutations, checkoutMessages, chatRequests)
	return &StorefrontMetrics{
		cartMutations:    cartMutations,
		checkoutMessages: checkoutMessages,
		chatRequests:     chatRequests,
	}
}

// IncCartMutation increments the mutation counter for the named operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckoutMessage increments the checkout handoff counter.
func (m *StorefrontMetrics) IncCheckoutMessage() {
	if m == nil || m.checkoutMessages == nil {
		return
	}
	m.checkoutMessages.Inc()
}

// IncChatRequest increments the assistant counter for the given outcome.
func (m *StorefrontMetrics) IncChatRequest(outcome string) {
	if m == nil || m.chatRequests == nil {
		return
	}
	m.chatRequests.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
