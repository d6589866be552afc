package fetch

// Package fetch implements the resource service: it builds request URLs from a
// configured base path, performs GETs through an injectable Transport, and
// decodes resource documents. Failures are reported as wrapped sentinel errors
// so callers can tell URL, transport, empty-body and decode problems apart.
