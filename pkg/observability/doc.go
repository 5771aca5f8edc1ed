/*
Package observability provides tools for monitoring provisioner runs.

It includes prometheus collectors for step and run outcomes, a LifecycleHooks
implementation feeding them, and an audit hook set that mirrors every step
boundary into a structured logger.
*/
package observability
