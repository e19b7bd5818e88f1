// Package recommendation maps an organization profile to the applicable
// compliance requirements and prices them in three tiers, net of the
// controls the organization already has in place.
//
// Every function in this package is pure: the catalog is read, never written,
// and all results are recomputed from the inputs.
package recommendation
