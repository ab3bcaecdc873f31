// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to the black-box matrix_test package.

// DiagonalLength exposes diagonalLength for boundary tests.
var DiagonalLength = diagonalLength
