// Package render turns solver results into their external forms: a JSON
// document for machine consumers and the plain-text listing the CLI
// prints. The solvers know nothing about either format; everything here
// is derived from a System, an amount, and a coins.Result.
package render
