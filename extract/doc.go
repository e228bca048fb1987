// Package extract unpacks CI artifact archives into a directory.
//
// Artifacts come off the GitLab API as zip archives. Unpack recreates
// the archive's internal layout under the destination directory,
// overwriting existing files at the same paths.
package extract
