// FILE: lixenwraith/tlog/metrics/handler.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Register adds a collector for source to reg and returns it
func Register(reg prometheus.Registerer, source StatsSource, namespace string, constLabels prometheus.Labels) (*Collector, error) {
	c := NewCollector(source, namespace, constLabels)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FastHTTPHandler serves the registry in the Prometheus exposition format
// for use in a fasthttp router
func FastHTTPHandler(g prometheus.Gatherer) fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
