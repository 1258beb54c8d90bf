// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides small process helpers that behave the same on
// [POSIX] systems and Windows.
//
// Key functions:
//   - ExecutableName: the program name without directory or .exe suffix, used
//     as the Cobra root command name so help text matches how the binary was invoked
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
