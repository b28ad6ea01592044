// Package writers turns a generated state into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (simulator text, JSON).
//   • Engine stays domain-only; app stays orchestration-only.
//   • A file is either fully written or not created at all (AtomicFile).
package writers
