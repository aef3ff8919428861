// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"fmt"
	"os"
)

// executeRename moves path to target. The decision engine probed target
// for existence when it computed the path, but probe and move are
// separated in time, so the target is first claimed with O_CREATE|O_EXCL.
// The claim fails if another process took the path in between; the
// subsequent rename atomically replaces the claimed placeholder.
func executeRename(path, target string) error {
	claim, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("target no longer free: %w", err)
	}
	claim.Close()

	if err := os.Rename(path, target); err != nil {
		os.Remove(target)
		return fmt.Errorf("rename failed: %w", err)
	}
	return nil
}
