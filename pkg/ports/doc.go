/*
Package ports defines the driven ports (interfaces) for the ioscope isolator.

These interfaces decouple the isolation protocol from the process-wide
console state it manipulates, allowing the isolator to run against the real
process console (pkg/adapters/proc) or against in-memory doubles
(pkg/adapters/memio) in tests.
*/
package ports
