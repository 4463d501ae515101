// Package mongodb attaches converted schema documents to MongoDB
// collections as $jsonSchema validators, using the official driver.
//
// The package deals only in the plumbing around a conversion result:
// wrapping it in a validator clause, creating collections with it, and
// swapping it onto existing collections through collMod. Producing the
// document itself is the root package's job.
package mongodb
