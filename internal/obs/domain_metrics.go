package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CheckoutTotal counts checkout calculations by customer tier and outcome.
	CheckoutTotal *prometheus.CounterVec
	// CartWriteTotal counts cart mutations by operation and outcome.
	CartWriteTotal *prometheus.CounterVec
	// CartsPurgedTotal tracks how many expired carts the worker removed.
	CartsPurgedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CheckoutTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout calculations by customer type and outcome.",
		}, []string{"customer_type", "result"})
		CartWriteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_write_total",
			Help:      "Count of cart write operations by kind and outcome.",
		}, []string{"op", "result"})
		CartsPurgedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carts_purged_total",
			Help:      "Number of expired carts removed by the purge worker.",
		})

		mustRegisterCollector(reg, CheckoutTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutTotal = v
			}
		})
		mustRegisterCollector(reg, CartWriteTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CartWriteTotal = v
			}
		})
		mustRegisterCollector(reg, CartsPurgedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CartsPurgedTotal = v
			}
		})
	})
}

// ObserveCheckout increments the checkout counter when metrics are registered.
func ObserveCheckout(customerType, result string) {
	if CheckoutTotal == nil {
		return
	}
	if customerType == "" {
		customerType = "unknown"
	}
	CheckoutTotal.WithLabelValues(customerType, result).Inc()
}

// ObserveCartWrite increments the cart mutation counter when metrics are registered.
func ObserveCartWrite(op, result string) {
	if CartWriteTotal == nil {
		return
	}
	CartWriteTotal.WithLabelValues(op, result).Inc()
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
