// Package schema defines the YAML class-model files consumed by the
// generator: classes with privacy-marked fields, and per-field getter
// annotations requesting accessor synthesis.
//
// A model file is the batch-frontend counterpart of a macro host: it
// supplies pre-parsed field declarations so synthesis never touches a
// compiler's own introspection APIs.
package schema
