// Package packaging assembles speedrun submission packages from a game
// instance directory.
//
// # Reading Guide
//
//   - recency.go: directory listing ordered by modification time
//   - attempt.go: the "<prefix>Speedrun #<N>" world naming convention
//   - selection.go: SelectionStrategy and its standard / companion implementations
//   - assembler.go: PrepareSubmission, the orchestrator
//   - archive.go: folder-to-zip builder
//
// # Key Interfaces
//
//   - SelectionStrategy: pick the world directories that belong in a submission
//   - PointerSource: resolve the most recently played world path
//   - ModSource: list mod descriptors for companion-mode detection
//   - Notifier: blocking user-facing alert for the locked-world failure
package packaging
