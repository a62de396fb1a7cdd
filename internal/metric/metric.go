package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freshcart_orders_created_total",
		Help: "Orders durably recorded with their line items.",
	})
	OrderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freshcart_order_failures_total",
		Help: "Order submissions that did not produce an order.",
	}, []string{"reason"})
	OrderCompensations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freshcart_order_compensations_total",
		Help: "Orders deleted after their line items failed to persist.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
