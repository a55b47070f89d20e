// Package testsupport provides config builders and a recording notification
// backend for tests.
package testsupport
