// Package render turns solver results into text tables, YAML or JSON.
//
// Text output follows the describe style of kubectl/oc: aligned "Key:\tvalue"
// headers followed by a tab-aligned table. Structured output goes through
// Report types whose fields are plain values; NaN residuals (a Newton step
// whose F evaluation failed) become null.
package render
