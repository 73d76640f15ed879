// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import ecsdk "github.com/absmach/errcheck/pkg/sdk"

// Keep SDK handle in global var.
var sdk ecsdk.SDK

// SetSDK sets the fault-injection SDK instance.
func SetSDK(s ecsdk.SDK) {
	sdk = s
}
