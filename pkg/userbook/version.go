// Package userbook holds project-wide metadata.
package userbook

// Version is the userbook release version, reported by `userbook version`.
const Version = "v0.1.0"
