// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for process level details that
// differ between operating systems.
//
// [ExecutableName] derives the command name shown in CLI usage lines from
// os.Args[0], so a renamed or symlinked binary reports the name it was run as:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.ExecutableName("pem-outline") + " [FILE]",
//	}
//
// Both separators are honored regardless of the host, so "C:\bin\tool.exe"
// yields "tool" on Linux as well.
//
// [POSIX]: https://pubs.opengroup.org/onlinepubs/9799919799/
package posix
