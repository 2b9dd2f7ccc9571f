// Package services holds the business rules between the HTTP controllers and
// the repositories.
//
// Two conventions apply across every service, mirroring how the consuming
// pages behave:
//
//   - List reads degrade: a repository failure is logged and mapped to an
//     empty result, so a broken query renders an empty page instead of an
//     error page.
//   - Single-item writes propagate: create/update/delete failures are
//     returned to the controller so the operator sees an explicit failure.
//
// Services accept narrow repository interfaces declared alongside each
// implementation; the concrete pgx-backed repositories satisfy them.
package services
