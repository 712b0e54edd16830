package platform

// Package platform contains OS/platform integration: the per-user app data
// directory and printer enumeration via the native spooler (Windows) or CUPS
// tooling (everything else).
