package domain

// CriterionSet is one AND-block of field=value equality constraints,
// keyed by the remote store's field names.
type CriterionSet map[string]string

// Query is an ordered OR of CriterionSets, matching the remote find
// endpoint's request shape. Order carries no semantics but is kept
// deterministic for reproducibility.
type Query []CriterionSet
