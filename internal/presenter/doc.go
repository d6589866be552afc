package presenter

// Package presenter owns the current resource ID and runs the fetch chain:
// resource metadata first, then its artwork. Results are mapped into view
// models and handed to a Delegate on the dispatcher the UI provides.
