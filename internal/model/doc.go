package model

// Package model defines domain data structures used across the app: history
// ledger records, print jobs, and status enums. Structures are designed for
// direct binding in the UI and explicit state transitions.
