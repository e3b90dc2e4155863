// Package gen turns a class model into generated accessor files.
//
// Generation is deterministic: classes are processed in declaration
// order, each getter-annotated field is synthesized independently, and
// one output file is rendered per class via text/template.
//
// A synthesis diagnostic never suppresses its declaration; the
// generator collects both and leaves the verdict to the caller.
package gen
