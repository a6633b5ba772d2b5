// Package metrics expone contadores Prometheus del API de inventario.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los colectores de la aplicación.
type Metrics struct {
	MovementsTotal      *prometheus.CounterVec
	MovementErrorsTotal *prometheus.CounterVec
	StockRebuildsTotal  prometheus.Counter
	DocketsTotal        *prometheus.CounterVec
}

// New registra los colectores en el registry indicado (nil = registry por defecto).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		MovementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_movements_total",
			Help: "Movimientos de stock registrados, por tipo.",
		}, []string{"type"}),
		MovementErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_movement_errors_total",
			Help: "Movimientos rechazados, por motivo.",
		}, []string{"reason"}),
		StockRebuildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "inventory_stock_rebuilds_total",
			Help: "Reconstrucciones de la proyección de stock desde el libro.",
		}),
		DocketsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_dockets_total",
			Help: "Guías de despacho generadas, por formato.",
		}, []string{"format"}),
	}
}
