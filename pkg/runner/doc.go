/*
Package runner executes provisioning plans.

Execution is strictly sequential and fail-fast: steps run in plan order, the
first failing administrative call aborts the remainder, and nothing is rolled
back. Each step outcome is reported to the configured lifecycle hooks and,
when a journal is attached, persisted as an audit record.
*/
package runner
