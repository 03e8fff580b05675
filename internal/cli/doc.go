// Package cli implements the command-line interface for floodmap.
//
// The cli package provides the Cobra-based CLI that runs the pipeline
// end to end: load the national data document, extract project records,
// export them to a spreadsheet, and render the interactive map. It
// prints a run summary in text or JSON form.
package cli
