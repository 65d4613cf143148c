// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/cmd"

func main() {
	cmd.Execute()
}
