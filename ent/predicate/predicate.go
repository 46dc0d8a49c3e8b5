// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attribution is the predicate function for attribution builders.
type Attribution func(*sql.Selector)

// Pipeline is the predicate function for pipeline builders.
type Pipeline func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)
