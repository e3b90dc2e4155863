// Package gogen renders synthesized accessor declarations as Go getter
// methods, one generated file per source package, using text/template
// and go/format.
//
// The fragment-level synthesis is shared with the class-model backend;
// this package only maps the resolved declaration facts (public name,
// backing field, forced projection) onto Go method syntax.
package gogen
