// Package status provides the structured error type used throughout the
// engine.
//
// Every fallible operation returns a *status.Error (or nil). Errors carry
// the operation that produced them, a Code classifying the failure, and an
// optional human-readable detail. Codes split into three classes:
//
//   - fatal: InvalidParameter, NoUnicodeTranslation, InvalidIdnNormalization,
//     NotFound, Unsupported, NoMemory, InvalidTable. The call failed and
//     retrying with the same input will fail again.
//   - recoverable: BufferTooSmall. The caller regrows the destination and
//     retries; every size-reporting entry point returns the required length
//     alongside this code.
//   - advisory: SomeNotMapped. The conversion completed and the output is
//     usable, but a replacement character was substituted somewhere. Callers
//     decide whether that counts as failure.
//
// Use the predicates (IsBufferTooSmall, IsSomeNotMapped, ...) rather than
// comparing codes directly; they tolerate nil and wrapped errors.
package status
