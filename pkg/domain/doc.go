/*
Package domain contains the core domain models for the wlsprov provisioner.

It defines the administrative entities the tool configures on a remote
application server (domains, JMS servers, modules, queues, distributed queues,
connection factories) and the Plan/Step vocabulary the runner executes. This
package is kept pure and free of external dependencies like I/O or transport,
following Hexagonal Architecture principles.

# Key Entities

  - DomainSpec: everything needed to create a server domain from a template.
  - Messaging: the JMS resource topology provisioned against a running instance.
  - Plan / Step: an ordered, deterministic sequence of administrative calls.
  - StepResult: the journaled outcome of a single step.
*/
package domain
