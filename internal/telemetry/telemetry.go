package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const (
	serviceVersion  = "v1.0.0"
	shutdownTimeout = 5 * time.Second
)

// ShutdownFunc flushes and releases everything Setup installed.
type ShutdownFunc func(context.Context) error

type closer struct {
	name  string
	close func(context.Context) error
}

// Setup - installs global trace, metric and log providers for the configured
// exporters. Without a collector endpoint or trace file the global no-op
// providers stay in place and the returned shutdown does nothing.
func Setup(ctx context.Context, conf config.Telemetry) (ShutdownFunc, error) {
	if !conf.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	var closers []closer

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].close(ctx); err != nil {
				errs = append(errs, fmt.Errorf("failed to shutdown %s: %w", closers[i].name, err))
			}
		}

		return errors.Join(errs...)
	}

	fail := func(err error) (ShutdownFunc, error) {
		return nil, errors.Join(err, shutdown(ctx))
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.ServiceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if conf.TraceFile != "" {
		file, err := os.OpenFile(conf.TraceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fail(fmt.Errorf("failed to open trace file: %w", err))
		}
		closers = append(closers, closer{name: "trace file", close: func(context.Context) error { return file.Close() }})

		fileExporter, err := stdouttrace.New(stdouttrace.WithWriter(file))
		if err != nil {
			return fail(fmt.Errorf("failed to create file trace exporter: %w", err))
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(fileExporter))
	}

	var conn *grpc.ClientConn
	if conf.OTLPEndpoint != "" {
		conn, err = grpc.NewClient(conf.OTLPEndpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fail(fmt.Errorf("failed to create gRPC connection to OTLP collector: %w", err))
		}
		closers = append(closers, closer{name: "gRPC connection", close: func(context.Context) error { return conn.Close() }})

		otlpTraceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			return fail(fmt.Errorf("failed to create OTLP trace exporter: %w", err))
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(otlpTraceExporter))
	}

	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)
	closers = append(closers, closer{name: "TracerProvider", close: tracerProvider.Shutdown})
	otel.SetTracerProvider(tracerProvider)

	if conn != nil {
		metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			return fail(fmt.Errorf("failed to create OTLP metric exporter: %w", err))
		}

		meterProvider := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
			sdkmetric.WithResource(res),
		)
		closers = append(closers, closer{name: "MeterProvider", close: meterProvider.Shutdown})
		otel.SetMeterProvider(meterProvider)

		logExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
		if err != nil {
			return fail(fmt.Errorf("failed to create OTLP log exporter: %w", err))
		}

		loggerProvider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		)
		closers = append(closers, closer{name: "LoggerProvider", close: loggerProvider.Shutdown})
		global.SetLoggerProvider(loggerProvider)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return shutdown, nil
}
