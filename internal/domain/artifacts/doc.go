// Package artifacts describes the history of encryption and decryption runs:
// the ArtifactMeta entity, its query filter and the repository and service contracts.
package artifacts
