// Package builder is the web front end: a form that collects campaign
// content, a live preview of the rendered email, raw and downloadable
// documents, and a small JSON API for scripted rendering.
//
//	svc := builder.New(cfg, collector.New(collectorCfg), preview.NewMemoryStore(previewCfg),
//		builder.WithLogger(log),
//		builder.WithMetrics(builder.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	r.Mount("/", svc.Handle())
package builder
