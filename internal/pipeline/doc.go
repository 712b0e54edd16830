package pipeline

// Package pipeline implements the core print pipeline: it drives the
// generate -> print -> log sequence for submitted values, the auto-submit
// trigger, and bulk reprint with per-item failure isolation.
