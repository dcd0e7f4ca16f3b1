package metrics

import (
	"net/http"

	"coursecatalog/backend/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes catalog statistics and mutation counts.
type Metrics struct {
	registry    *prometheus.Registry
	courses     prometheus.Gauge
	instructors prometheus.Gauge
	categories  prometheus.Gauge
	avgPrice    prometheus.Gauge
	selected    prometheus.Gauge
	mutations   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		courses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "courses",
			Help:      "Courses currently in the catalog.",
		}),
		instructors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "instructors",
			Help:      "Distinct instructors across the catalog.",
		}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "categories_in_use",
			Help:      "Distinct categories with at least one course.",
		}),
		avgPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "average_price",
			Help:      "Average course price, rounded.",
		}),
		selected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "selected_courses",
			Help:      "Courses in the bulk selection.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "mutations_total",
			Help:      "Catalog mutations by operation.",
		}, []string{"op"}),
	}
	m.registry.MustRegister(m.courses, m.instructors, m.categories, m.avgPrice, m.selected, m.mutations)
	return m
}

// Observe records the latest statistics and selection size.
func (m *Metrics) Observe(stats models.Statistics, selected int) {
	m.courses.Set(float64(stats.TotalCourses))
	m.instructors.Set(float64(stats.TotalInstructors))
	m.categories.Set(float64(stats.TotalCategories))
	m.avgPrice.Set(float64(stats.AveragePrice))
	m.selected.Set(float64(selected))
}

// Mutation counts n changes for op (create, update, delete, bulk_delete).
func (m *Metrics) Mutation(op string, n int) {
	m.mutations.WithLabelValues(op).Add(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
