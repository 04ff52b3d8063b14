// Package services implements the core application services.
//
// Services orchestrate domain logic through the driven ports and are
// exposed to hosts through the driving ports. They hold per-invocation
// state only; session configuration arrives as explicit values.
package services
