// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// InternalNote is the predicate function for internalnote builders.
type InternalNote func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Presupuesto is the predicate function for presupuesto builders.
type Presupuesto func(*sql.Selector)

// PushToken is the predicate function for pushtoken builders.
type PushToken func(*sql.Selector)

// Quote is the predicate function for quote builders.
type Quote func(*sql.Selector)

// Reminder is the predicate function for reminder builders.
type Reminder func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
