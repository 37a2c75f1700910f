package types

// Version is the canonical project version.
// CLI, snapshot schema, and journal framing share this version
// per the lockstep versioning policy.
const Version = "0.3.0"
