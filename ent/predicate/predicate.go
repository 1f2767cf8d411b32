// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// Law is the predicate function for law builders.
type Law func(*sql.Selector)

// LegalReference is the predicate function for legalreference builders.
type LegalReference func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ReportImage is the predicate function for reportimage builders.
type ReportImage func(*sql.Selector)
