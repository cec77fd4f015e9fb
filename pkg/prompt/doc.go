// Package prompt asks for render context fields that are still missing after
// files and flags have been applied. The survey-backed driver is used by the
// CLI; tests substitute a scripted Driver.
package prompt
