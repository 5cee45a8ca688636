package jaeger

import (
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	jaegerclient "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init registers a Jaeger tracer as the global opentracing tracer. Agent
// address and sampling can be tuned through the standard JAEGER_* variables.
// On failure the global no-op tracer stays in place.
func Init(serviceName string) io.Closer {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		hlog.Errorf("jaeger config from env failed: %v", err)
		return nopCloser{}
	}
	cfg.ServiceName = serviceName
	if cfg.Sampler == nil || cfg.Sampler.Type == "" {
		cfg.Sampler = &jaegercfg.SamplerConfig{
			Type:  jaegerclient.SamplerTypeConst,
			Param: 1,
		}
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		hlog.Errorf("jaeger tracer init failed: %v", err)
		return nopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	hlog.Infof("jaeger tracer registered for %s", serviceName)
	return closer
}
