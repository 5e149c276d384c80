package trace

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	"github.com/narender/cellar-store/common/utils"
)

// TracerName is the instrumentation scope for spans started through StartSpan.
const TracerName = "github.com/narender/cellar-store"

type StatusMapperFunc func(error) codes.Code

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}
	return codes.Error
}

// BusinessAwareStatusMapper leaves the span status unset for business rule
// violations (unknown product, not enough stock) so they do not show up as
// failures in trace backends.
func BusinessAwareStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) && appErr.IsBusiness() {
		return codes.Unset
	}
	return codes.Error
}

// StartSpan begins a new span named after the calling function.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operationName := utils.GetCallerFunctionName(3)
	tracer := otel.Tracer(TracerName)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			semconv.CodeFunctionKey.String(operationName),
			semconv.CodeNamespaceKey.String(TracerName),
		),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	return tracer.Start(ctx, operationName, opts...)
}

// EndSpan ends span, recording *errPtr when it is non-nil.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	if statusCode != codes.Error {
		span.AddEvent("business_rule_violation", trace.WithAttributes(
			semconv.ExceptionMessageKey.String(err.Error()),
		))
		span.SetStatus(statusCode, "")
		return
	}

	span.RecordError(err, trace.WithStackTrace(true))
	span.SetStatus(codes.Error, err.Error())
}

// RecordSpanError marks span as failed with exception attributes.
func RecordSpanError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() || err == nil {
		return
	}

	allAttrs := append([]attribute.KeyValue{
		semconv.ExceptionMessageKey.String(err.Error()),
		semconv.ExceptionTypeKey.String(fmt.Sprintf("%T", err)),
	}, attrs...)

	span.RecordError(err, trace.WithAttributes(allAttrs...))
	span.SetStatus(codes.Error, err.Error())
}
