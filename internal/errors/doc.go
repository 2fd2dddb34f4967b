// Package errors provides structured errors for the companion converter.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes map onto gRPC status codes at the transport boundary.
//
// # Error classes
//
// The converter distinguishes four classes of failure:
//
//   - Parse errors: the uploaded document is not valid JSON. Returned as
//     InvalidArgument before any record is created; see Malformed.
//   - Mapping warnings: an unmapped skill, an unresolved item name, a missing
//     optional field. These are never errors; they are logged and resolved by a
//     documented default.
//   - Unknown sheet fields: swallowed by the field sink.
//   - Host errors: the character store failed. Wrapped with Wrap so the store's
//     code survives, and returned to the caller.
//
// # Basic Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
//	if err := store.AttachItems(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to attach items")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Resolver == nil {
//	    vb.RequiredField("Resolver")
//	}
//	return vb.Build()
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Metadata travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError.
//
// # Command line
//
// The CLI exits with ExitStatus(err), so scripts can tell a bad export (2)
// from an unknown character (3) or an unreachable store (4).
package errors
