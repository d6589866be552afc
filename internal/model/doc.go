package model

// Package model defines the domain data structures shared by the fetch pipeline
// and the UI: the decoded resource record, its display-ready view model, and
// the fetch status enum that drives loading indicators.
