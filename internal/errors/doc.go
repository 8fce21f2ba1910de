// Package errors provides the structured errors used across battlemap-api.
//
// Every layer returns *Error values carrying a Code, a player-facing Message,
// an optional Cause and free-form Meta:
//
//	err := errors.OutOfRangef("target is %d ft away, %s reaches %d ft", dist, name, reach).
//	    WithMeta("distance_ft", dist).
//	    WithMeta("range_ft", reach)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save scene")
//	}
//
// Layer guidelines:
//   - Engine packages (geometry, combat, targeting, drawing) return
//     InvalidArgument, FailedPrecondition or OutOfRange and never mutate state
//     when they do.
//   - Repositories return NotFound for missing records and wrap driver
//     failures as Internal.
//   - The orchestrator maps failed persistence to Unavailable after rolling
//     the in-memory change back.
//   - Handlers convert with ToGRPCError.
package errors
