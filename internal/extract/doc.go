// Package extract parses the saved national projects HTML document into
// project records.
//
// The document pairs summary table rows (an anchor carrying a data-id
// and the project name) with hidden <template> fragments keyed by
// "proj-card-{id}" that hold the detail fields. Extraction joins the
// two by id, applies per-field defaults for missing detail nodes, and
// silently drops rows without a matching template or a parseable
// coordinate pair.
package extract
