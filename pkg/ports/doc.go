/*
Package ports defines the driven ports (interfaces) for the wlsprov runner.

These interfaces decouple the provisioning logic from external implementations,
allowing the runner to work with the real REST management API, an audit journal
backend, and a lock provider without knowing their transports.

# Key Interfaces

  - AdminClient: issues administrative calls against the application server.
  - Journal: persists per-run, per-step audit records.
  - DistributedLocker: serializes provisioner runs across replicas.
*/
package ports
