// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testutil provides certificate fixtures shared by the tests of the
// analysis packages. It must only be imported from _test.go files.
package testutil
