package errors

import (
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail so clients can read the measured distance, the
// spent resource and similar context back out.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, convErr := structpb.NewStruct(normalizeMeta(customErr.Meta))
	if convErr != nil {
		slog.Warn("dropping error metadata", "error", convErr)
		return st.Err()
	}
	withDetails, detailErr := st.WithDetails(details)
	if detailErr != nil {
		slog.Warn("dropping error metadata", "error", detailErr)
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// normalizeMeta coerces values structpb cannot take (ints of every width,
// string slices, nested string maps) into the JSON shapes it accepts.
func normalizeMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case int:
			out[k] = float64(val)
		case int32:
			out[k] = float64(val)
		case int64:
			out[k] = float64(val)
		case []string:
			items := make([]any, len(val))
			for i, s := range val {
				items[i] = s
			}
			out[k] = items
		case map[string][]string:
			nested := make(map[string]any, len(val))
			for nk, nv := range val {
				items := make([]any, len(nv))
				for i, s := range nv {
					items[i] = s
				}
				nested[nk] = items
			}
			out[k] = nested
		default:
			out[k] = v
		}
	}
	return out
}
