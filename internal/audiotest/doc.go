// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles shared across packages: generated
// sample sources, scripted byte producers, and a fake clock.
package audiotest
